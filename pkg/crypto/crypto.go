package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func ComputeHMAC256(toSign []byte, secretKey string) string {
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write(toSign)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// VerifyHMAC performs a constant-time comparison between the computed
// signature of toSign and the provided one.
func VerifyHMAC(secretKey string, toSign []byte, providedSign string) bool {
	signed := ComputeHMAC256(toSign, secretKey)
	return hmac.Equal([]byte(signed), []byte(providedSign))
}

func HashPassword(password string) (hashedPassword string, err error) {

	pwd, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return "", fmt.Errorf("HashPassword error: %w", err)
	}

	return string(pwd), nil
}

func CheckPasswordHash(password string, hash string) (isValid bool) {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false
	}
	return true
}
