package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndMe(t *testing.T) {
	r, _ := newTestApp(t)

	token, _ := signup(t, r, "Ana Souza", "ana@example.com")

	w := doJSON(t, r, http.MethodGet, "/user/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Ana Souza", user["name"])
	assert.Equal(t, "ana@example.com", user["email"])
	assert.Equal(t, "free", user["role"])
	assert.NotContains(t, user, "password")
}

func TestSignUpDuplicateEmail(t *testing.T) {
	r, _ := newTestApp(t)

	signup(t, r, "Ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"name":     "Outra Ana",
		"email":    "ana@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email já cadastrado", decodeBody(t, w)["error"])
}

func TestSignUpValidation(t *testing.T) {
	r, _ := newTestApp(t)

	cases := []struct {
		name    string
		payload gin.H
		wantMsg string
	}{
		{"sem nome", gin.H{"email": "a@b.com", "password": testPassword}, "Faltando campo name"},
		{"sem email", gin.H{"name": "Ana", "password": testPassword}, "Faltando campo email"},
		{"sem senha", gin.H{"name": "Ana", "email": "a@b.com"}, "Faltando campo password"},
		{"senha curta", gin.H{"name": "Ana", "email": "a@b.com", "password": "123"}, "Faltando campo password"},
		{"email inválido", gin.H{"name": "Ana", "email": "não é email", "password": testPassword}, "E-mail inválido"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/auth/signup", "", tc.payload)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.wantMsg, decodeBody(t, w)["error"])
		})
	}
}

func TestSignIn(t *testing.T) {
	r, _ := newTestApp(t)
	signup(t, r, "Ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPost, "/auth/signin", "", gin.H{
		"email":    "ana@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "ana@example.com", body["user"].(map[string]any)["email"])
}

func TestSignInWrongCredentials(t *testing.T) {
	r, _ := newTestApp(t)
	signup(t, r, "Ana", "ana@example.com")

	// senha errada e email inexistente respondem a mesma coisa
	for _, payload := range []gin.H{
		{"email": "ana@example.com", "password": "senha-errada"},
		{"email": "ninguem@example.com", "password": testPassword},
	} {
		w := doJSON(t, r, http.MethodPost, "/auth/signin", "", payload)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Email ou senha inválidos", decodeBody(t, w)["error"])
	}
}

func TestAuthRequired(t *testing.T) {
	r, db := newTestApp(t)
	token, id := signup(t, r, "Ana", "ana@example.com")

	t.Run("sem header", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/user/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Acesso negado", decodeBody(t, w)["error"])
	})

	t.Run("token inválido", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/user/me", "um.token.qualquer", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token inválido", decodeBody(t, w)["error"])
	})

	t.Run("usuário removido", func(t *testing.T) {
		require.NoError(t, db.Exec("DELETE FROM users WHERE id = ?", id).Error)
		w := doJSON(t, r, http.MethodGet, "/user/me", token, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Acesso negado", decodeBody(t, w)["error"])
	})
}

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(42)
	require.NoError(t, err)

	parsed, err := parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed)

	_, err = parseToken("lixo")
	assert.Error(t, err)
}
