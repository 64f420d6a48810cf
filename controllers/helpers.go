package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// JWT claims arrive as float64, context tests may set uint. Normalize.
func currentUserID(c *gin.Context) (uint, error) {
	raw, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id missing from context")
	}
	switch v := raw.(type) {
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	case int64:
		return uint(v), nil
	case float64:
		return uint(v), nil
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(n), nil
		}
	}
	return 0, errors.New("user_id not valid")
}

func currentUserName(c *gin.Context) string {
	if v, ok := c.Get("name"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "system"
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite wording, used by the test databases
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
