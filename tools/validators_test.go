package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ana@example.com",
		"ana.souza+tag@sub.example.com.br",
		"a_b%c@dominio.io",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"sem-arroba.com",
		"ana@",
		"@example.com",
		"ana@example",
		"ana souza@example.com",
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}

func TestCheckPassword(t *testing.T) {
	assert.Equal(t, "password", CheckPassword("12345"))
	assert.Equal(t, "password", CheckPassword(strings.Repeat("x", 101)))
	assert.Equal(t, "", CheckPassword("123456"))
	assert.Equal(t, "", CheckPassword(strings.Repeat("x", 100)))
}

func TestRandomNumbers(t *testing.T) {
	code := RandomNumbers(6)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}
}
