package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":     "Front Desk",
		"email":    "desk@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, db.Where("email = ?", "desk@example.com").First(&user).Error)
	assert.Equal(t, "staff", user.Role) // admin must be asked for explicitly
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "desk@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "desk@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	body := map[string]interface{}{
		"name":     "A",
		"email":    "dup@example.com",
		"password": "longenough",
	}
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
