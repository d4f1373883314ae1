package controller

import (
	"net/http"

	"catalog/logger"
	"catalog/web/service"
	"catalog/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse is the payload returned on a successful login.
type LoginResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Message  string   `json:"message"`
}

// AuthController handles login and logout.
type AuthController struct {
	verifier      service.CredentialVerifier
	sessionMaxAge int // minutes
}

// NewAuthController creates an AuthController and initializes its routes.
func NewAuthController(g *gin.RouterGroup, verifier service.CredentialVerifier, sessionMaxAge int) *AuthController {
	a := &AuthController{
		verifier:      verifier,
		sessionMaxAge: sessionMaxAge,
	}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/auth")

	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// login verifies the submitted credentials and establishes the session
// security context. Failures never reveal whether the username existed.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid login request")
		return
	}
	if form.Username == "" || form.Password == "" {
		pureJsonMsg(c, http.StatusUnauthorized, false, "invalid username or password")
		return
	}

	user := a.verifier.Verify(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login attempt, IP: \"%s\"", getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, "invalid username or password")
		return
	}

	if err := session.SetMaxAge(c, a.sessionMaxAge*60); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	principal := &session.Principal{
		Username: user.Username,
		Roles:    user.RoleList(),
	}
	if err := session.SetLoginUser(c, principal); err != nil {
		logger.Warning("unable to save session:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "unable to establish session")
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	c.JSON(http.StatusOK, LoginResponse{
		Username: principal.Username,
		Roles:    principal.Roles,
		Message:  "Login successful",
	})
}

// logout destroys the session security context.
func (a *AuthController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	pureJsonMsg(c, http.StatusOK, true, "Logout successful")
}
