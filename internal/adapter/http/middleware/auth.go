package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"productivity/internal/auth"
	"productivity/internal/core/domain"
	"productivity/pkg/apierrors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware extracts the bearer token, validates it and stores
// the subject login in the request context. Handlers decide for
// themselves what a login that no longer resolves to a user means.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, apierrors.MsgNotAuthenticated, lang)
			return
		}

		subject, err := tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			msgKey := apierrors.MsgTokenInvalid
			if errors.Is(err, domain.ErrTokenExpired) {
				msgKey = apierrors.MsgTokenExpired
			}
			abortUnauthorized(c, msgKey, lang)
			return
		}

		c.Set("login", subject)
		c.Next()
	}
}

// GetLogin returns the token subject stored by AuthMiddleware.
func GetLogin(c *gin.Context) string {
	if login, exists := c.Get("login"); exists {
		if s, ok := login.(string); ok {
			return s
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msgKey, lang string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, msgKey, lang),
	)
}
