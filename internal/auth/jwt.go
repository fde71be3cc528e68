package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adityahq/exammaster-lambda/internal/config"
)

type contextKey string

const claimsContextKey contextKey = "userClaims"

var jwtSecret []byte

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Init loads the signing secret from JWT_SECRET. When the variable is
// unset the API runs open, which matches local development against the
// in-memory store.
func Init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		config.Logger().Warn("JWT_SECRET not set, authentication middleware disabled")
		jwtSecret = nil
		return
	}
	jwtSecret = []byte(secret)
}

func Enabled() bool {
	return len(jwtSecret) > 0
}

func GenerateJWT(userID, role string, duration time.Duration) (string, error) {
	if !Enabled() {
		return "", fmt.Errorf("jwt secret not configured")
	}

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AuthMiddleware validates the Bearer token on every request. Requests
// pass through untouched when no secret is configured.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			config.Error(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			config.Error(w, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("token validation failed")
			config.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}
