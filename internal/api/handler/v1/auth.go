package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1/request"
	"github.com/eventdeskhq/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdeskhq/eventdesk-api/internal/config"
	"github.com/eventdeskhq/eventdesk-api/internal/pkg/jwthelper"
	"github.com/eventdeskhq/eventdesk-api/internal/service"
)

// SessionCookieName is the cookie carrying the signed admin session.
const SessionCookieName = "session"

type AuthService interface {
	Authenticate(email, password string) (string, error)
}

type AuthHandler struct {
	svc  AuthService
	conf *config.APIConfig
}

func NewAuthHandler(svc AuthService, conf *config.APIConfig) *AuthHandler {
	return &AuthHandler{
		svc:  svc,
		conf: conf,
	}
}

func (h *AuthHandler) sessionTTL() time.Duration {
	hours := h.conf.SessionTTLHours
	if hours <= 0 {
		hours = 24
	}

	return time.Duration(hours) * time.Hour
}

// HandleLogin godoc
// @Summary      Log in
// @Description  Verifies admin credentials and sets the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  request.LoginRequest  true  "credentials"
// @Success      200  {object}  response.OK
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	email, err := h.svc.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid email or password"))
			return
		}

		err = fmt.Errorf("HandleLogin -> h.svc.Authenticate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ttl := h.sessionTTL()
	token, err := jwthelper.GenerateSessionToken(h.conf.SessionSigningKey, email, ttl)
	if err != nil {
		err = fmt.Errorf("HandleLogin -> jwthelper.GenerateSessionToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	secure := h.conf.Environment == "production"
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)

	ctx.JSON(http.StatusOK, response.OK{Message: "logged in"})
}

// HandleLogout godoc
// @Summary      Log out
// @Description  Clears the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.OK
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	secure := h.conf.Environment == "production"
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)

	ctx.JSON(http.StatusOK, response.OK{Message: "logged out"})
}

// HandleSession godoc
// @Summary      Get the current session
// @Description  Returns the authenticated admin identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Session
// @Failure      401  {object}  response.Err
// @Router       /auth/session [get]
func (h *AuthHandler) HandleSession(ctx *gin.Context) {
	token, err := ctx.Cookie(SessionCookieName)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("no active session"))
		return
	}

	claims, err := jwthelper.ParseSessionToken(h.conf.SessionSigningKey, token)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized("invalid session"))
		return
	}

	ctx.JSON(http.StatusOK, response.Session{
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	})
}
