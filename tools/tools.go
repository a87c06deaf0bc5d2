package tools

import (
	"math/rand"
	"time"
)

const numbers = "0123456789"

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandomNumbers gera um código numérico (ex: código de recuperação de senha).
func RandomNumbers(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = numbers[seededRand.Intn(len(numbers))]
	}
	return string(b)
}
