package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nftmarket/service"
)

func Market(e gin.IRouter, a *API) {
	e.POST("/market/listing", a.Auth, a.createListing)
	e.POST("/market/listing/buy", a.Auth, a.buy)
	e.PUT("/market/listing", a.Auth, a.attachTransaction)
	e.GET("/market/listing", a.listings)
	e.GET("/market/listing/all", a.activeListings)
	e.GET("/market/listing/:id", a.getListing)
	e.GET("/market/transactions", a.transactions)
}

// @Tags        market
// @Summary     list NFT
// @Description puts an owned NFT on sale, a future drop_at schedules the listing
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     service.CreateListingInput true "listing"
// @Success     201  {object} model.Listing
// @Failure     400  {object} service.ErrRes
// @Failure     403  {object} service.ErrRes
// @Router      /market/listing [post]
func (a *API) createListing(c *gin.Context) {
	var in service.CreateListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.CreateListing(c.Request.Context(), caller(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Tags        market
// @Summary     buy NFT
// @Description pays the asking price, royalties go to the collection creator
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     service.BuyInput true "listing to buy"
// @Success     200  {object} model.Transaction
// @Failure     400  {object} service.ErrRes
// @Router      /market/listing/buy [post]
func (a *API) buy(c *gin.Context) {
	var in service.BuyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.Buy(c.Request.Context(), caller(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     attach transaction
// @Description links an existing settlement to a listing of the caller
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     service.AttachTransactionInput true "listing and transaction"
// @Success     200  {object} model.Listing
// @Failure     400  {object} service.ErrRes
// @Failure     403  {object} service.ErrRes
// @Router      /market/listing [put]
func (a *API) attachTransaction(c *gin.Context) {
	var in service.AttachTransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.AttachTransaction(c.Request.Context(), caller(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     listings of a seller
// @Produce     json
// @Param       walletAddress query    string true  "seller wallet"
// @Param       name          query    string false "fuzzy NFT name"
// @Param       collection    query    string false "fuzzy collection name"
// @Param       blockchain    query    string false "blockchain"
// @Param       status        query    string false "LISTED or SOLD, default LISTED"
// @Param       minPrice      query    number false "minimum price"
// @Param       maxPrice      query    number false "maximum price"
// @Param       sort          query    string false "price|bestOffer|listingPrice|lastListed:asc|desc"
// @Param       page          query    int    false "Page, default 1"
// @Param       limit         query    int    false "Page size, default 10"
// @Success     200           {object} service.Page[service.ListingView]
// @Failure     400           {object} service.ErrRes
// @Router      /market/listing [get]
func (a *API) listings(c *gin.Context) {
	var f service.ListingFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.Listings(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     active listings
// @Produce     json
// @Param       page  query    int false "Page, default 1"
// @Param       limit query    int false "Page size, default 10"
// @Success     200   {object} service.Page[service.ListingView]
// @Failure     400   {object} service.ErrRes
// @Router      /market/listing/all [get]
func (a *API) activeListings(c *gin.Context) {
	var req service.PageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.ActiveListings(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     query listing
// @Produce     json
// @Param       id  path     string true "listing id"
// @Success     200 {object} service.ListingView
// @Failure     400 {object} service.ErrRes
// @Router      /market/listing/{id} [get]
func (a *API) getListing(c *gin.Context) {
	res, err := a.Svc.Listing(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        market
// @Summary     settlements of a wallet
// @Produce     json
// @Param       walletAddress query    string true  "wallet address"
// @Param       role          query    string false "seller or buyer, both when empty"
// @Param       name          query    string false "fuzzy NFT name"
// @Param       minPrice      query    number false "minimum price"
// @Param       maxPrice      query    number false "maximum price"
// @Param       page          query    int    false "Page, default 1"
// @Param       limit         query    int    false "Page size, default 10"
// @Success     200           {object} service.Page[service.TransactionView]
// @Failure     400           {object} service.ErrRes
// @Router      /market/transactions [get]
func (a *API) transactions(c *gin.Context) {
	var f service.TransactionFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.Transactions(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
