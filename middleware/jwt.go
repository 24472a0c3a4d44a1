package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/setbox30-netizen/masjid-baitul-mannan/config"
	"github.com/setbox30-netizen/masjid-baitul-mannan/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// Claims is the token payload
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// InitJWT sets the signing secret from the configuration
func InitJWT(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWT.Secret)
}

// GenerateToken issues a signed token carrying the user identity and role
func GenerateToken(userID uint, username, role string, expire time.Duration) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "masjid-baitul-mannan",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a token string and returns its claims
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metode signing tidak dikenal")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token tidak valid")
	}
	return claims, nil
}

// JWTAuth rejects requests without a valid Bearer token and stores the
// caller identity on the context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if auth := c.GetHeader("Authorization"); auth != "" {
			parts := strings.SplitN(auth, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "format Authorization salah"})
				c.Abort()
				return
			}
			tokenString = strings.TrimSpace(parts[1])
		} else {
			// download and print links cannot set headers
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "silakan login dulu"})
			c.Abort()
			return
		}

		claims, err := ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "token tidak valid atau kedaluwarsa"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireAdmin only lets admin-role callers through. Members can read
// everything but never mutate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentRole(c) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"code": 403, "message": "hanya pengurus yang boleh mengubah data"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCurrentUserID returns the authenticated user ID, 0 when absent
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetCurrentRole returns the authenticated user's role, "" when absent
func GetCurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
