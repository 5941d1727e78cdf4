package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nftmarket/service"
)

func Trade(e gin.IRouter, a *API) {
	e.POST("/market/trade", a.Auth, a.createTrade)
	e.PUT("/market/trade", a.Auth, a.updateTrade)
	e.GET("/market/trades", a.trades)
	e.GET("/market/trade/all", a.allTrades)
}

// @Tags        market
// @Summary     propose trade
// @Description swap offer between friends, no funds change hands
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     service.CreateTradeInput true "taker and items"
// @Success     201  {object} model.Trade
// @Failure     400  {object} service.ErrRes
// @Router      /market/trade [post]
func (a *API) createTrade(c *gin.Context) {
	var in service.CreateTradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.CreateTrade(c.Request.Context(), caller(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Tags        market
// @Summary     answer trade
// @Description the taker accepts, swapping every item, or rejects a pending trade
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     service.UpdateTradeInput true "trade and answer"
// @Success     200  {object} model.Trade
// @Failure     400  {object} service.ErrRes
// @Failure     403  {object} service.ErrRes
// @Router      /market/trade [put]
func (a *API) updateTrade(c *gin.Context) {
	var in service.UpdateTradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.UpdateTrade(c.Request.Context(), caller(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     trades of a wallet
// @Produce     json
// @Param       walletAddress query    string true  "wallet address"
// @Param       type          query    string false "sent or received, both when empty"
// @Param       status        query    string false "PENDING, COMPLETED or CANCELLED"
// @Param       page          query    int    false "Page, default 1"
// @Param       limit         query    int    false "Page size, default 10"
// @Success     200           {object} service.Page[model.Trade]
// @Failure     400           {object} service.ErrRes
// @Router      /market/trades [get]
func (a *API) trades(c *gin.Context) {
	var f service.TradeFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.Trades(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     every trade of a wallet
// @Produce     json
// @Param       walletAddress query    string true  "wallet address"
// @Param       page          query    int    false "Page, default 1"
// @Param       limit         query    int    false "Page size, default 10"
// @Success     200           {object} service.Page[model.Trade]
// @Failure     400           {object} service.ErrRes
// @Router      /market/trade/all [get]
func (a *API) allTrades(c *gin.Context) {
	var f service.TradeFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	f.Type, f.Status = "", ""
	res, err := a.Svc.Trades(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
