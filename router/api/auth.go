package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"nftmarket/service"
)

// refreshCookie http-only cookie carrying the refresh token
const refreshCookie = "refreshToken"

func Auth(e gin.IRouter, a *API) {
	e.GET("/auth/nonce", a.nonce)
	e.POST("/auth/signin", a.signIn)
	e.POST("/auth/refresh", a.refresh)
	e.POST("/auth/logout", a.logout)
}

func (a *API) setRefresh(c *gin.Context, t *service.Tokens) {
	maxAge := int(time.Until(t.RefreshUntil).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookie, t.RefreshToken, maxAge, "/", "", a.SecureCookie, true)
}

func (a *API) clearRefresh(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookie, "", -1, "/", "", a.SecureCookie, true)
}

// @Tags        auth
// @Summary     sign-in nonce
// @Description the nonce must be signed with personal_sign and sent to /auth/signin
// @Produce     json
// @Param       address query    string true "wallet address"
// @Success     200     {object} map[string]string
// @Failure     400     {object} service.ErrRes
// @Router      /auth/nonce [get]
func (a *API) nonce(c *gin.Context) {
	nonce, err := a.Svc.Nonce(c.Request.Context(), c.Query("address"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nonce": nonce})
}

// @Tags        auth
// @Summary     sign in
// @Description returns an access token, the refresh token is set as an http-only cookie
// @Accept      json
// @Produce     json
// @Param       body body     service.SignInInput true "address and nonce signature"
// @Success     200  {object} service.Tokens
// @Failure     400  {object} service.ErrRes
// @Failure     401  {object} service.ErrRes
// @Router      /auth/signin [post]
func (a *API) signIn(c *gin.Context) {
	var in service.SignInInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	tokens, err := a.Svc.SignIn(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	a.setRefresh(c, tokens)
	c.JSON(http.StatusOK, tokens)
}

// @Tags        auth
// @Summary     refresh tokens
// @Description rotates the refresh cookie and returns a new access token
// @Produce     json
// @Success     200 {object} service.Tokens
// @Failure     401 {object} service.ErrRes
// @Router      /auth/refresh [post]
func (a *API) refresh(c *gin.Context) {
	token, _ := c.Cookie(refreshCookie)
	tokens, err := a.Svc.Refresh(c.Request.Context(), token)
	if err != nil {
		a.clearRefresh(c)
		fail(c, err)
		return
	}
	a.setRefresh(c, tokens)
	c.JSON(http.StatusOK, tokens)
}

// @Tags        auth
// @Summary     log out
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     500 {object} service.ErrRes
// @Router      /auth/logout [post]
func (a *API) logout(c *gin.Context) {
	token, _ := c.Cookie(refreshCookie)
	if err := a.Svc.Logout(c.Request.Context(), token); err != nil {
		fail(c, err)
		return
	}
	a.clearRefresh(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
