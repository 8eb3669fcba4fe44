package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrAPITokenNotFound = errors.New("API token not found")

// APITokenPrefix marks API tokens in the Authorization header.
const APITokenPrefix = "news_api|"

const (
	apiTokenSecretBytes = 32
	apiTokenHintLength  = 8
)

// APIToken lets a reader's scripts act on their scraps and profile. Only the SHA-256 hash of
// the full token is stored.
type APIToken struct {
	ID         string     `json:"id"`
	UserID     string     `json:"-"`
	TokenHash  string     `json:"-"`
	Prefix     string     `json:"prefix"`
	Name       *string    `json:"name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	RevokedAt  *time.Time `json:"-"`
}

func (t APIToken) IsActive() bool {
	return t.ActiveAt(time.Now())
}

func (t APIToken) ActiveAt(now time.Time) bool {
	if t.RevokedAt != nil {
		return false
	}
	return t.ExpiresAt == nil || now.Before(*t.ExpiresAt)
}

// IsAPIToken reports whether a bearer credential has the API token form.
func IsAPIToken(credential string) bool {
	return strings.HasPrefix(credential, APITokenPrefix)
}

// HashAPIToken returns the form of a full token that is stored and looked up.
func HashAPIToken(fullToken string) string {
	hash := sha256.Sum256([]byte(fullToken))
	return hex.EncodeToString(hash[:])
}

// GenerateAPIToken returns a new random full token together with the short hint shown in
// token lists, e.g. "news_api|1a2b3c4d".
func GenerateAPIToken() (fullToken, hint string, err error) {
	secret := make([]byte, apiTokenSecretBytes)
	if _, err := rand.Read(secret); err != nil {
		return "", "", fmt.Errorf("generating random token: %w", err)
	}

	encoded := hex.EncodeToString(secret)
	return APITokenPrefix + encoded, APITokenPrefix + encoded[:apiTokenHintLength], nil
}
