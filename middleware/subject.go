// middleware/subject.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rohanverma/dashgate/accesscontrol/attribute"
	"github.com/rohanverma/dashgate/config"
	logger "github.com/rohanverma/dashgate/logging"
)

// SubjectKey is the gin context key holding the request subject's principal
// attributes.
const SubjectKey = "subjectPrincipals"

// BackendClaims carries the backend user identity and its group
// memberships issued by the CMS session layer.
type BackendClaims struct {
	jwt.StandardClaims
	UserID   int   `json:"uid"`
	GroupIDs []int `json:"gids"`
}

// SubjectMiddleware authenticates the request token and materializes the
// subject as typed principal attributes. Downstream handlers pass the
// subject explicitly into every access check; nothing reads it from
// ambient globals.
func SubjectMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			logger.Warn("No Authorization token provided")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			logger.Error("Error parsing token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		subject := make([]attribute.PrincipalAttribute, 0, len(claims.GroupIDs)+1)
		subject = append(subject, attribute.User(claims.UserID))
		for _, groupID := range claims.GroupIDs {
			subject = append(subject, attribute.Group(groupID))
		}

		c.Set(SubjectKey, subject)
		c.Set("userID", attribute.User(claims.UserID).Identifier())

		c.Next()
	}
}

func parseToken(tokenString string) (*BackendClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	secret := config.GetString("auth.jwtSecret")
	if secret == "" {
		return nil, fmt.Errorf("auth.jwtSecret is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &BackendClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*BackendClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token or wrong claims type")
}

// SubjectFromContext returns the principal attributes the subject
// middleware stored for this request.
func SubjectFromContext(c *gin.Context) []attribute.PrincipalAttribute {
	value, exists := c.Get(SubjectKey)
	if !exists {
		return nil
	}
	subject, _ := value.([]attribute.PrincipalAttribute)
	return subject
}
