package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Ttaiwl/chronopass/internal/shared/config"
	"github.com/Ttaiwl/chronopass/internal/shared/constants"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
	"github.com/Ttaiwl/chronopass/internal/shared/utils"
)

// PrincipalMiddleware resolves the calling principal for every request. In
// jwt mode the principal is the subject claim of a bearer token; in header
// mode the X-Principal header is trusted as-is, which is only acceptable
// behind a gateway or in development.
type PrincipalMiddleware struct {
	mode   string
	secret []byte
	logger logger.Interface
}

func NewPrincipalMiddleware(cfg *config.AuthConfig, log logger.Interface) *PrincipalMiddleware {
	return &PrincipalMiddleware{
		mode:   cfg.Mode,
		secret: []byte(cfg.JWT.Secret),
		logger: log.Named("middleware.principal"),
	}
}

// RequirePrincipal aborts with 401 unless a principal can be resolved.
func (m *PrincipalMiddleware) RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := m.resolve(c)
		if err == nil {
			err = utils.ValidatePrincipal(principal)
		}
		if err != nil {
			m.logger.Warnw("failed to resolve principal",
				"path", c.Request.URL.Path,
				"error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing or invalid credentials")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipal, principal)
		c.Next()
	}
}

func (m *PrincipalMiddleware) resolve(c *gin.Context) (string, error) {
	if m.mode == "header" {
		principal := strings.TrimSpace(c.GetHeader(constants.HeaderXPrincipal))
		if principal == "" {
			return "", fmt.Errorf("missing %s header", constants.HeaderXPrincipal)
		}
		return principal, nil
	}

	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("token has no subject claim")
	}

	return subject, nil
}

// PrincipalFromContext returns the principal set by RequirePrincipal.
func PrincipalFromContext(c *gin.Context) string {
	return c.GetString(constants.ContextKeyPrincipal)
}
