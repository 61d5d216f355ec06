package middleware

import (
	"strings"
	"time"

	"recolecta-api/apperr"
	"recolecta-api/config"
	"recolecta-api/guard"
	"recolecta-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string          `json:"userId"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// tokenTTL is the fixed session lifetime. Tokens are self-contained and
// stateless — expiry is the only lifecycle bound, there is no revocation.
const tokenTTL = 7 * 24 * time.Hour

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// VerifyToken parses and validates a bearer token, returning its claims.
func VerifyToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Auth("Invalid or expired token")
	}
	return claims, nil
}

// AuthRequired validates the JWT and injects claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperr.Write(c, apperr.Auth("Authorization header required (Bearer <token>)"))
			c.Abort()
			return
		}
		claims, err := VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			apperr.Write(c, err)
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// Permit enforces the access control table for a single operation. It
// runs after AuthRequired, which has already resolved the caller.
func Permit(op guard.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, authenticated := c.Get("userID")
		if err := guard.Check(op, authenticated, GetRole(c)); err != nil {
			apperr.Write(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) string {
	val, _ := c.Get("userID")
	s, _ := val.(string)
	return s
}

// GetRole extracts caller role from context
func GetRole(c *gin.Context) models.UserRole {
	val, _ := c.Get("role")
	s, _ := val.(string)
	return models.UserRole(s)
}
