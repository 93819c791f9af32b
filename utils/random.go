package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomString returns length hex characters from crypto/rand.
func RandomString(length int) string {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)[:length]
}
