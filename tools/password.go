package tools

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const passwordIterations = 100000
const passwordSaltLength = 16
const passwordKeyLength = 32

// HashPassword deriva um hash PBKDF2-SHA256 com salt aleatório.
// O retorno embute o salt: "base64(salt):base64(chave)".
func HashPassword(password string) (string, error) {
	salt := make([]byte, passwordSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("falha ao gerar salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, passwordIterations, passwordKeyLength, sha256.New)

	enc := base64.StdEncoding
	return enc.EncodeToString(salt) + ":" + enc.EncodeToString(key), nil
}

// VerifyPassword confere a senha contra um hash gravado por HashPassword.
// Encodings malformados contam como senha inválida.
func VerifyPassword(password string, stored string) bool {
	parts := strings.SplitN(stored, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}

	enc := base64.StdEncoding
	salt, err := enc.DecodeString(parts[0])
	if err != nil {
		return false
	}
	expected, err := enc.DecodeString(parts[1])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, passwordIterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}
