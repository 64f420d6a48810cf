package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenSaleNumber(t *testing.T) {
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	re := regexp.MustCompile(`^SAL-202609-\d{3}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, GenSaleNumber(at))
	}
}

func TestGenInvoiceNumber(t *testing.T) {
	at := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	re := regexp.MustCompile(`^SB-2026-\d{3}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, GenInvoiceNumber(at))
	}
}
