package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventdeskhq/eventdesk-api/internal/pkg/jwthelper"
)

// SessionCookieName must match the cookie set by the login handler.
const SessionCookieName = "session"

// openPrefixes are reachable without a session. API routes are listed
// so that browser page loads redirect while JSON callers get their
// regular status codes from the handlers.
var openPrefixes = []string{
	"/api/",
	"/login",
	"/healthz",
	"/metrics",
	"/swagger",
	"/static/",
	"/favicon",
}

type SessionGate struct {
	signingKey string
}

func NewSessionGate(signingKey string) *SessionGate {
	return &SessionGate{
		signingKey: signingKey,
	}
}

// Gate redirects unauthenticated page requests to /login. It never
// redirects API traffic.
func (g *SessionGate) Gate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.Request.URL.Path

		for _, prefix := range openPrefixes {
			if strings.HasPrefix(path, prefix) {
				ctx.Next()
				return
			}
		}

		token, err := ctx.Cookie(SessionCookieName)
		if err != nil {
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		claims, err := jwthelper.ParseSessionToken(g.signingKey, token)
		if err != nil {
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		ctx.Set("sessionEmail", claims.Email)
		ctx.Next()
	}
}
