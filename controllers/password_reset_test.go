package controllers

import (
	"net/http"
	"testing"
	"time"

	"agendai/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// latestResetCode lê direto do banco o código que teria ido por e-mail.
func latestResetCode(t *testing.T, db *gorm.DB, userID int64) string {
	t.Helper()
	var reset models.PasswordResetToken
	require.NoError(t, db.
		Where("user_id = ? AND used = ?", userID, false).
		Order("id desc").
		First(&reset).Error)
	return reset.Token
}

func TestPasswordResetFlow(t *testing.T) {
	r, db := newTestApp(t)
	_, id := signup(t, r, "Ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{"email": "ana@example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Código de recuperação enviado", decodeBody(t, w)["message"])

	code := latestResetCode(t, db, id)
	require.Len(t, code, 6)

	w = doJSON(t, r, http.MethodPost, "/auth/validate-token", "", gin.H{
		"email": "ana@example.com",
		"token": code,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["valid"])

	w = doJSON(t, r, http.MethodPost, "/auth/reset-password", "", gin.H{
		"email":       "ana@example.com",
		"token":       code,
		"newPassword": "senha-nova",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Senha redefinida com sucesso", decodeBody(t, w)["message"])

	// senha antiga morre, nova passa
	w = doJSON(t, r, http.MethodPost, "/auth/signin", "", gin.H{
		"email": "ana@example.com", "password": testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, r, http.MethodPost, "/auth/signin", "", gin.H{
		"email": "ana@example.com", "password": "senha-nova",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// código é de uso único
	w = doJSON(t, r, http.MethodPost, "/auth/validate-token", "", gin.H{
		"email": "ana@example.com", "token": code,
	})
	assert.Equal(t, false, decodeBody(t, w)["valid"])

	w = doJSON(t, r, http.MethodPost, "/auth/reset-password", "", gin.H{
		"email": "ana@example.com", "token": code, "newPassword": "outra-senha",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Token inválido ou expirado", decodeBody(t, w)["error"])
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{"email": "ninguem@example.com"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuário não encontrado", decodeBody(t, w)["error"])

	w = doJSON(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewCodeInvalidatesPrevious(t *testing.T) {
	r, db := newTestApp(t)
	_, id := signup(t, r, "Ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{"email": "ana@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	first := latestResetCode(t, db, id)

	w = doJSON(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{"email": "ana@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	second := latestResetCode(t, db, id)

	w = doJSON(t, r, http.MethodPost, "/auth/validate-token", "", gin.H{
		"email": "ana@example.com", "token": first,
	})
	body := decodeBody(t, w)
	if first == second {
		// colisão de 6 dígitos: o código "antigo" ainda é o vigente
		assert.Equal(t, true, body["valid"])
	} else {
		assert.Equal(t, false, body["valid"])
	}

	w = doJSON(t, r, http.MethodPost, "/auth/validate-token", "", gin.H{
		"email": "ana@example.com", "token": second,
	})
	assert.Equal(t, true, decodeBody(t, w)["valid"])
}

func TestExpiredCodeRejected(t *testing.T) {
	r, db := newTestApp(t)
	_, id := signup(t, r, "Ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{"email": "ana@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	code := latestResetCode(t, db, id)

	past := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.PasswordResetToken{}).
		Where("user_id = ?", id).
		Update("expires_at", past).Error)

	w = doJSON(t, r, http.MethodPost, "/auth/validate-token", "", gin.H{
		"email": "ana@example.com", "token": code,
	})
	assert.Equal(t, false, decodeBody(t, w)["valid"])

	w = doJSON(t, r, http.MethodPost, "/auth/reset-password", "", gin.H{
		"email": "ana@example.com", "token": code, "newPassword": "senha-nova",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Token inválido ou expirado", decodeBody(t, w)["error"])
}

func TestResetPasswordValidation(t *testing.T) {
	r, _ := newTestApp(t)
	signup(t, r, "Ana", "ana@example.com")

	cases := []struct {
		name    string
		payload gin.H
	}{
		{"sem token", gin.H{"email": "ana@example.com", "newPassword": "senha-nova"}},
		{"sem senha", gin.H{"email": "ana@example.com", "token": "123456"}},
		{"senha curta", gin.H{"email": "ana@example.com", "token": "123456", "newPassword": "123"}},
		{"código errado", gin.H{"email": "ana@example.com", "token": "000000", "newPassword": "senha-nova"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/auth/reset-password", "", tc.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}
