package middlewares

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SubjectKey is the context key holding the subject of an authenticated token.
const SubjectKey = "subject"

// LoadSigningKey reads the shared HS256 key from path.
func LoadSigningKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jwt key: %w", err)
	}

	key := bytes.TrimSpace(data)
	if len(key) == 0 {
		return nil, fmt.Errorf("jwt key file %s is empty", path)
	}
	return key, nil
}

// Authenticator rejects requests without a valid HS256 bearer token.
func Authenticator(key []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := parser.Parse(raw, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			zap.S().Named("auth").Debugw("rejected token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if sub, err := token.Claims.GetSubject(); err == nil && sub != "" {
			c.Set(SubjectKey, sub)
		}

		c.Next()
	}
}
