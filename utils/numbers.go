package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenSaleNumber returns e.g. SAL-202609-042. The 3-digit suffix is random, so
// callers must retry on a unique-index collision.
func GenSaleNumber(t time.Time) string {
	return fmt.Sprintf("SAL-%d%02d-%03d", t.Year(), int(t.Month()), rand.Intn(1000))
}

// GenInvoiceNumber returns e.g. SB-2026-042.
func GenInvoiceNumber(t time.Time) string {
	return fmt.Sprintf("SB-%d-%03d", t.Year(), rand.Intn(1000))
}
