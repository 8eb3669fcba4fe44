package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					writeUnauthorized(w, err.Error())
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

const (
	firebaseIssuerPrefix = "https://securetoken.google.com/"
	firebaseJWKSURI      = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
)

// NewFirebaseValidator creates a validator for Firebase ID tokens issued to the given project.
// Bearer tokens carrying the API or dev token prefixes are left to their own validators.
func NewFirebaseValidator(projectID string) (AuthValidator, error) {
	issuerURL, err := url.Parse(firebaseIssuerPrefix + projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}
	jwksURI, err := url.Parse(firebaseJWKSURI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the JWKS url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute, jwks.WithCustomJWKSURI(jwksURI))
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{projectID},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		token, ok := bearerToken(r)
		if !ok || domain.IsAPIToken(token) || strings.HasPrefix(token, DevTokenPrefix) {
			return nil, nil
		}

		validated, err := jwtValidator.ValidateToken(r.Context(), token)
		if err != nil {
			return nil, fmt.Errorf("invalid Firebase ID token")
		}

		claims := validated.(*validator.ValidatedClaims)
		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodFirebase,
		}, nil
	}, nil
}

// NewAPITokenValidator creates a validator for API tokens.
// It asynchronously updates the token's last_used_at timestamp on successful validation.
func NewAPITokenValidator(
	ctx context.Context,
	tokenGetter datasources.APITokenByHashGetter,
	lastUsedUpdater datasources.APITokenLastUsedUpdater,
) AuthValidator {
	// Last-used tracking is best effort: updates still buffered when the service stops are lost.
	// Once the buffer is full further updates are dropped.
	updateChan := make(chan string, 100)
	go func() {
		for tokenID := range updateChan {
			updateErr := lastUsedUpdater.UpdateAPITokenLastUsed(context.WithoutCancel(ctx), tokenID)
			if updateErr != nil {
				logger := domain.LoggerFromContext(ctx).With("token", tokenID)
				logger.WarnContext(context.WithoutCancel(ctx),
					"failed to update last used time for token",
					"error", updateErr)
			}
		}
	}()

	return func(r *http.Request) (*AuthResult, error) {
		fullToken, ok := bearerToken(r)
		if !ok || !domain.IsAPIToken(fullToken) {
			return nil, nil
		}

		token, err := tokenGetter.GetAPITokenByHash(r.Context(), domain.HashAPIToken(fullToken))
		if err != nil {
			return nil, fmt.Errorf("invalid API token")
		}

		if !token.IsActive() {
			return nil, fmt.Errorf("API token is revoked or expired")
		}

		select {
		case updateChan <- token.ID:
		default:
		}

		return &AuthResult{
			UserID: token.UserID,
			Method: domain.AuthMethodAPIToken,
		}, nil
	}
}

// DevTokenPrefix marks locally signed tokens in the Authorization header.
const DevTokenPrefix = "dev|"

// NewDevTokenValidator accepts HS256 tokens signed with secret, for local development without
// a Firebase project. The subject claim is the user ID.
func NewDevTokenValidator(secret []byte) (AuthValidator, error) {
	if len(secret) == 0 {
		return nil, errors.New("dev auth secret is empty")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(r *http.Request) (*AuthResult, error) {
		raw, ok := bearerToken(r)
		if !ok || !strings.HasPrefix(raw, DevTokenPrefix) {
			return nil, nil
		}

		claims := &jwt.RegisteredClaims{}
		if _, err := parser.ParseWithClaims(raw[len(DevTokenPrefix):], claims, func(*jwt.Token) (any, error) {
			return secret, nil
		}); err != nil {
			return nil, fmt.Errorf("invalid dev token")
		}
		if claims.Subject == "" {
			return nil, fmt.Errorf("dev token has no subject")
		}

		return &AuthResult{
			UserID: claims.Subject,
			Method: domain.AuthMethodDev,
		}, nil
	}, nil
}

// SignDevToken issues a token accepted by NewDevTokenValidator.
func SignDevToken(secret []byte, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing dev token: %w", err)
	}
	return DevTokenPrefix + signed, nil
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(authHeader[len("Bearer "):])
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = fmt.Fprintf(w, `{"error":%q}`, message)
}
