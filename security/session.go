package security

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
)

const TokenExpiration = 24 * time.Hour
const KeySecToken = "sec_token"

var TokenCache = cache.New(TokenExpiration, 1*time.Minute)

type Session struct {
	Token       string    `json:"token"`
	SigningTime time.Time `json:"signingTime"`
}

type LoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

func HashSha256(raw string) string {
	h := sha256.New()
	h.Write([]byte(raw))
	return hex.EncodeToString(h.Sum(nil))
}

// AdminGateEnabled reports whether destructive commands demand an admin
// session. The secret is configured through the environment, never a
// compiled-in constant. An unset secret disables the gate for single-user
// local deployments.
func AdminGateEnabled() bool {
	return os.Getenv("ADMIN_SECRET") != ""
}

func adminSecretMatches(secret string) bool {
	configured := os.Getenv("ADMIN_SECRET")
	if configured == "" {
		return false
	}
	return HashSha256(secret) == HashSha256(configured)
}
