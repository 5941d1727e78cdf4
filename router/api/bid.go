package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nftmarket/service"
)

func Bid(e gin.IRouter, a *API) {
	e.POST("/market/bid", a.Auth, a.createBid)
	e.PUT("/market/bid", a.Auth, a.updateBid)
	e.GET("/market/bid", a.walletBids)
	e.GET("/market/bid/listing", a.listingBids)
	e.GET("/market/bid/current", a.currentBid)
}

// @Tags        market
// @Summary     place bid
// @Description the price must beat the best active offer, the previous one is rejected
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     service.CreateBidInput true "listing and price"
// @Success     201  {object} model.Bid
// @Failure     400  {object} service.ErrRes
// @Router      /market/bid [post]
func (a *API) createBid(c *gin.Context) {
	var in service.CreateBidInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.CreateBid(c.Request.Context(), caller(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Tags        market
// @Summary     answer bid
// @Description the seller accepts or rejects an active bid, accepting settles the sale
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     service.UpdateBidInput true "bid and answer"
// @Success     200  {object} model.Bid
// @Failure     400  {object} service.ErrRes
// @Failure     403  {object} service.ErrRes
// @Router      /market/bid [put]
func (a *API) updateBid(c *gin.Context) {
	var in service.UpdateBidInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.UpdateBid(c.Request.Context(), caller(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     bids of a wallet
// @Produce     json
// @Param       walletAddress query    string true  "bidder wallet"
// @Param       status        query    string false "ACTIVE, REJECTED, ACCEPTED or EXPIRING"
// @Param       page          query    int    false "Page, default 1"
// @Param       limit         query    int    false "Page size, default 10"
// @Success     200           {object} service.Page[service.BidView]
// @Failure     400           {object} service.ErrRes
// @Router      /market/bid [get]
func (a *API) walletBids(c *gin.Context) {
	var f service.BidFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.WalletBids(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     bids of a listing
// @Produce     json
// @Param       listingId query    string true "listing id"
// @Success     200       {array}  service.BidView
// @Failure     400       {object} service.ErrRes
// @Router      /market/bid/listing [get]
func (a *API) listingBids(c *gin.Context) {
	res, err := a.Svc.ListingBids(c.Request.Context(), c.Query("listingId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     best active bid
// @Produce     json
// @Param       listingId query    string true "listing id"
// @Success     200       {object} service.BidView
// @Failure     400       {object} service.ErrRes
// @Router      /market/bid/current [get]
func (a *API) currentBid(c *gin.Context) {
	res, err := a.Svc.CurrentBid(c.Request.Context(), c.Query("listingId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
