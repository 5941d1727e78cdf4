package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"nftmarket/service"
)

func User(e gin.IRouter, a *API) {
	e.GET("/user", a.listUsers)
	e.GET("/user/search", a.searchUsers)
	e.POST("/user", a.createUser)
	e.GET("/user/:walletAddress", a.getUser)
	e.GET("/user/:walletAddress/profit", a.profit)
	e.GET("/user/:walletAddress/profit/hourly", a.hourlyProfit)
	e.PUT("/user/:walletAddress", a.Auth, a.updateUser)
	e.DELETE("/user/:walletAddress", a.Auth, a.deleteUser)
	e.PUT("/user/:walletAddress/notifications", a.Auth, a.updatePreferences)
}

// @Tags        user
// @Summary     list users
// @Description every registered user, oldest first
// @Produce     json
// @Success     200 {array}  model.User
// @Failure     500 {object} service.ErrRes
// @Router      /user [get]
func (a *API) listUsers(c *gin.Context) {
	res, err := a.Svc.Users(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        user
// @Summary     search users
// @Description fuzzy search over nickname and wallet address
// @Produce     json
// @Param       query query    string false "search text"
// @Param       page  query    int    false "Page, default 1"
// @Param       limit query    int    false "Page size, default 10"
// @Success     200   {object} service.Page[model.User]
// @Failure     400   {object} service.ErrRes
// @Router      /user/search [get]
func (a *API) searchUsers(c *gin.Context) {
	req := struct {
		service.PageReq
		Query string `form:"query"`
	}{}
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.SearchUsers(c.Request.Context(), req.Query, req.PageReq)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        user
// @Summary     query user
// @Produce     json
// @Param       walletAddress path     string true "wallet address"
// @Success     200           {object} model.User
// @Failure     400           {object} service.ErrRes
// @Router      /user/{walletAddress} [get]
func (a *API) getUser(c *gin.Context) {
	res, err := a.Svc.User(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        user
// @Summary     register user
// @Description multipart form, the avatar falls back to the default image
// @Accept      multipart/form-data
// @Produce     json
// @Param       email          formData string true  "email"
// @Param       wallet_address formData string true  "wallet address"
// @Param       nickname       formData string true  "nickname, 3-20 characters"
// @Param       avatar         formData file   false "avatar image"
// @Success     201            {object} model.User
// @Failure     400            {object} service.ErrRes
// @Router      /user [post]
func (a *API) createUser(c *gin.Context) {
	var in service.CreateUserInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}
	avatar, err := upload(c, "avatar")
	if err != nil {
		fail(c, err)
		return
	}
	res, err := a.Svc.CreateUser(c.Request.Context(), in, avatar)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Tags        user
// @Summary     update user
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       walletAddress path     string true  "wallet address"
// @Param       email         formData string false "email"
// @Param       nickname      formData string false "nickname"
// @Param       avatar        formData file   false "new avatar image"
// @Success     200           {object} model.User
// @Failure     400           {object} service.ErrRes
// @Failure     403           {object} service.ErrRes
// @Router      /user/{walletAddress} [put]
func (a *API) updateUser(c *gin.Context) {
	wallet := c.Param("walletAddress")
	if !self(c, wallet) {
		return
	}
	var in service.UpdateUserInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}
	avatar, err := upload(c, "avatar")
	if err != nil {
		fail(c, err)
		return
	}
	res, err := a.Svc.UpdateUser(c.Request.Context(), wallet, in, avatar)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        user
// @Summary     delete user
// @Produce     json
// @Security    Bearer
// @Param       walletAddress path     string true "wallet address"
// @Success     200           {object} model.User
// @Failure     400           {object} service.ErrRes
// @Failure     403           {object} service.ErrRes
// @Router      /user/{walletAddress} [delete]
func (a *API) deleteUser(c *gin.Context) {
	wallet := c.Param("walletAddress")
	if !self(c, wallet) {
		return
	}
	res, err := a.Svc.DeleteUser(c.Request.Context(), wallet)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        user
// @Summary     update notification preferences
// @Description omitted flags keep their value
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       walletAddress path     string                   true "wallet address"
// @Param       body          body     service.PreferencesInput true "preference flags"
// @Success     200           {object} model.User
// @Failure     400           {object} service.ErrRes
// @Router      /user/{walletAddress}/notifications [put]
func (a *API) updatePreferences(c *gin.Context) {
	wallet := c.Param("walletAddress")
	if !self(c, wallet) {
		return
	}
	var in service.PreferencesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.UpdatePreferences(c.Request.Context(), wallet, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func hoursParam(c *gin.Context, def int) (int, bool) {
	raw := c.DefaultQuery("hours", strconv.Itoa(def))
	hours, err := strconv.Atoi(raw)
	if err != nil {
		fail(c, service.Invalid("hours", "must be an integer"))
		return 0, false
	}
	return hours, true
}

// @Tags        user
// @Summary     wallet profit
// @Description percentage change of held value plus sales over the last hours
// @Produce     json
// @Param       walletAddress path     string true  "wallet address"
// @Param       hours         query    int    false "window in hours, default 24"
// @Success     200           {object} map[string]float64
// @Failure     400           {object} service.ErrRes
// @Router      /user/{walletAddress}/profit [get]
func (a *API) profit(c *gin.Context) {
	hours, ok := hoursParam(c, 24)
	if !ok {
		return
	}
	res, err := a.Svc.Profit(c.Request.Context(), c.Param("walletAddress"), hours)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profit": res})
}

// @Tags        user
// @Summary     hourly wallet profit
// @Produce     json
// @Param       walletAddress path     string true  "wallet address"
// @Param       hours         query    int    false "number of hours, default 24"
// @Success     200           {array}  service.HourlyProfit
// @Failure     400           {object} service.ErrRes
// @Router      /user/{walletAddress}/profit/hourly [get]
func (a *API) hourlyProfit(c *gin.Context) {
	hours, ok := hoursParam(c, 24)
	if !ok {
		return
	}
	res, err := a.Svc.HourlyProfit(c.Request.Context(), c.Param("walletAddress"), hours)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
