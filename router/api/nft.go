package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nftmarket/common/utils"
	"nftmarket/service"
)

func NFT(e gin.IRouter, a *API) {
	e.POST("/nft/collection", a.Auth, a.createCollection)
	e.GET("/nft/collection", a.getCollection)
	e.GET("/nft/collection/activities", a.collectionActivities)
	e.GET("/nft/collections", a.pageCollections)
	e.GET("/nft/collections/search", a.searchCollections)
	e.POST("/nft/nft", a.Auth, a.createNFT)
	e.PUT("/nft/nft", a.Auth, a.setTokenID)
	e.GET("/nft/nft", a.getNFT)
	e.GET("/nft/nfts", a.collectionNFTs)
	e.GET("/nft/nft/user", a.ownedNFTs)
	e.GET("/nft/nft/search", a.searchNFTs)
}

// @Tags        NFT
// @Summary     create collection
// @Description image and metadata are pinned to IPFS, the caller is the creator
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       name             formData string true  "name, 3-50 characters"
// @Param       symbol           formData string true  "symbol, 3-10 characters"
// @Param       contract_address formData string true  "collection contract address"
// @Param       description      formData string false "description"
// @Param       royalties        formData number false "royalty percentage, 0-100"
// @Param       blockchain       formData string true  "blockchain"
// @Param       website          formData string false "website URL"
// @Param       twitter          formData string false "twitter URL"
// @Param       discord          formData string false "discord URL"
// @Param       telegram         formData string false "telegram URL"
// @Param       image            formData file   true  "collection image"
// @Success     201              {object} model.Collection
// @Failure     400              {object} service.ErrRes
// @Router      /nft/collection [post]
func (a *API) createCollection(c *gin.Context) {
	var in service.CreateCollectionInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}
	image, err := upload(c, "image")
	if err != nil {
		fail(c, err)
		return
	}
	res, err := a.Svc.CreateCollection(c.Request.Context(), caller(c), in, image)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Tags        NFT
// @Summary     query collection
// @Description collection with floor, volume, item and owner counts
// @Produce     json
// @Param       collectionId query    string true "collection id"
// @Success     200          {object} service.CollectionView
// @Failure     400          {object} service.ErrRes
// @Router      /nft/collection [get]
func (a *API) getCollection(c *gin.Context) {
	res, err := a.Svc.Collection(c.Request.Context(), c.Query("collectionId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     collection activities
// @Produce     json
// @Param       collectionId query    string true  "collection id"
// @Param       eventTypes   query    string false "comma list of Mint, Sale, Transfer, Offer"
// @Success     200          {array}  service.Activity
// @Failure     400          {object} service.ErrRes
// @Router      /nft/collection/activities [get]
func (a *API) collectionActivities(c *gin.Context) {
	res, err := a.Svc.CollectionActivities(c.Request.Context(), c.Query("collectionId"), utils.SplitList(c.Query("eventTypes")))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     collections of a creator
// @Produce     json
// @Param       creatorWallet query    string true  "creator wallet"
// @Param       page          query    int    false "Page, default 1"
// @Param       limit         query    int    false "Page size, default 10"
// @Success     200           {object} service.Page[service.CollectionView]
// @Failure     400           {object} service.ErrRes
// @Router      /nft/collections [get]
func (a *API) pageCollections(c *gin.Context) {
	req := struct {
		service.PageReq
		Creator string `form:"creatorWallet"`
	}{}
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.Collections(c.Request.Context(), req.Creator, req.PageReq)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     search collections
// @Produce     json
// @Param       query query    string false "fuzzy collection name"
// @Param       sort  query    string false "floor|floorChange|volume|volumeChange|itemsCount|ownersCount:asc|desc"
// @Param       page  query    int    false "Page, default 1"
// @Param       limit query    int    false "Page size, default 10"
// @Success     200   {object} service.Page[service.CollectionView]
// @Failure     400   {object} service.ErrRes
// @Router      /nft/collections/search [get]
func (a *API) searchCollections(c *gin.Context) {
	req := struct {
		service.PageReq
		Query string `form:"query"`
		Sort  string `form:"sort"`
	}{}
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.SearchCollections(c.Request.Context(), req.Query, req.Sort, req.PageReq)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     create NFT
// @Description the caller becomes owner, traits is a JSON array of {trait_type, value}
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       name          formData string true  "name"
// @Param       description   formData string false "description"
// @Param       collection_id formData string true  "collection id"
// @Param       quantity      formData int    true  "quantity"
// @Param       price         formData number false "price"
// @Param       traits        formData string false "JSON array of traits"
// @Param       image         formData file   true  "NFT image"
// @Success     201           {object} model.NFT
// @Failure     400           {object} service.ErrRes
// @Router      /nft/nft [post]
func (a *API) createNFT(c *gin.Context) {
	var in service.CreateNFTInput
	if err := c.ShouldBind(&in); err != nil {
		badRequest(c, err)
		return
	}
	if err := jsonField(c, "traits", &in.Traits); err != nil {
		fail(c, err)
		return
	}
	image, err := upload(c, "image")
	if err != nil {
		fail(c, err)
		return
	}
	res, err := a.Svc.CreateNFT(c.Request.Context(), caller(c), in, image)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Tags        NFT
// @Summary     set token id
// @Description records the on-chain token id once minted, owner only
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     service.SetTokenIDInput true "NFT and token id"
// @Success     200  {object} model.NFT
// @Failure     400  {object} service.ErrRes
// @Failure     403  {object} service.ErrRes
// @Router      /nft/nft [put]
func (a *API) setTokenID(c *gin.Context) {
	var in service.SetTokenIDInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.SetTokenID(c.Request.Context(), caller(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     query NFT
// @Description NFT with traits, listings, bids and activities
// @Produce     json
// @Param       nftId query    string true "NFT id"
// @Success     200   {object} service.NFTDetails
// @Failure     400   {object} service.ErrRes
// @Router      /nft/nft [get]
func (a *API) getNFT(c *gin.Context) {
	res, err := a.Svc.NFT(c.Request.Context(), c.Query("nftId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     NFTs of a collection
// @Produce     json
// @Param       collectionId query    string false "collection id"
// @Param       name         query    string false "fuzzy name"
// @Param       status       query    string false "comma list of LISTED, HAS_OFFERS"
// @Param       minPrice     query    number false "minimum price"
// @Param       maxPrice     query    number false "maximum price"
// @Param       page         query    int    false "Page, default 1"
// @Param       limit        query    int    false "Page size, default 10"
// @Success     200          {object} service.Page[service.NFTCard]
// @Failure     400          {object} service.ErrRes
// @Router      /nft/nfts [get]
func (a *API) collectionNFTs(c *gin.Context) {
	var f service.NFTFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.CollectionNFTs(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     NFTs of a wallet
// @Produce     json
// @Param       walletAddress query    string true  "owner wallet"
// @Param       query         query    string false "fuzzy name"
// @Param       status        query    string false "NEW or LISTED"
// @Param       blockchain    query    string false "blockchain"
// @Param       minPrice      query    number false "minimum price"
// @Param       maxPrice      query    number false "maximum price"
// @Param       sortCriteria  query    string false "price|bestOffer:asc|desc"
// @Param       page          query    int    false "Page, default 1"
// @Param       limit         query    int    false "Page size, default 10"
// @Success     200           {object} service.Page[service.NFTCard]
// @Failure     400           {object} service.ErrRes
// @Router      /nft/nft/user [get]
func (a *API) ownedNFTs(c *gin.Context) {
	var f service.OwnedFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.OwnedNFTs(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        NFT
// @Summary     search NFTs
// @Produce     json
// @Param       query      query    string false "fuzzy name"
// @Param       collection query    string false "fuzzy collection name"
// @Param       status     query    string false "NEW or LISTED"
// @Param       blockchain query    string false "blockchain"
// @Param       minPrice   query    number false "minimum price"
// @Param       maxPrice   query    number false "maximum price"
// @Param       page       query    int    false "Page, default 1"
// @Param       limit      query    int    false "Page size, default 10"
// @Success     200        {object} service.Page[service.NFTCard]
// @Failure     400        {object} service.ErrRes
// @Router      /nft/nft/search [get]
func (a *API) searchNFTs(c *gin.Context) {
	var f service.SearchFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.SearchNFTs(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
