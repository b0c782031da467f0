package carttoken

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

// CreateToken はカートIDから署名付きカートトークンを生成する
func CreateToken(cartID string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(cartID))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(cartID)) + "." + sig
}

// VerifyToken はトークンを検証しカートIDを返す
func VerifyToken(token string, secret []byte) (string, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", err
	}
	cartID := string(payload)

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return "", errors.New("invalid signature")
	}
	return cartID, nil
}

const cartCookieName = "irodori_cart"
const minSecretLen = 32

// CookieName はカートクッキー名
func CookieName() string {
	return cartCookieName
}

// SecretBytes は文字列から署名用のバイト列を生成する（最低32バイト）
func SecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// NewCartID はランダムなカートIDを生成する
func NewCartID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
