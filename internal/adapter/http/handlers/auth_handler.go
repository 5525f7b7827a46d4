package handlers

import (
	"net/http"
	"strings"

	request "bp_analytics/internal/adapter/http/dto/request"
	response "bp_analytics/internal/adapter/http/dto/response"
	"bp_analytics/internal/usecase"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// AuthHandler handles login/logout and carries the bearer-token
// middleware guarding the report routes.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Log in
// @Description  Validates credentials and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body request.LoginRequest true "credentials"
// @Success      200 {object} response.LoginResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      401 {object} pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RequireSession is the gin middleware enforcing a live bearer session
// on everything behind the login gate.
func (h *AuthHandler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := h.usecase.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
