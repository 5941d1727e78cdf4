package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"nftmarket/service"
)

func Friend(e gin.IRouter, a *API) {
	e.POST("/user/friend/request", a.Auth, a.sendFriendRequest)
	e.PUT("/user/friend/request", a.Auth, a.respondFriendRequest)
	e.GET("/user/friend/requests", a.friendRequests)
	e.GET("/user/friends", a.friends)
	e.DELETE("/user/friend", a.Auth, a.removeFriend)
}

type friendRequestReq struct {
	SenderWallet   string `json:"sender_wallet" binding:"required"`
	ReceiverWallet string `json:"receiver_wallet" binding:"required"`
}

type respondFriendReq struct {
	friendRequestReq
	Accepted *bool `json:"accepted" binding:"required"`
}

type removeFriendReq struct {
	User1Wallet string `json:"user1_wallet" binding:"required"`
	User2Wallet string `json:"user2_wallet" binding:"required"`
}

// @Tags        friend
// @Summary     send friend request
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     friendRequestReq true "sender must be the caller"
// @Success     201  {object} model.FriendRequest
// @Failure     400  {object} service.ErrRes
// @Failure     403  {object} service.ErrRes
// @Router      /user/friend/request [post]
func (a *API) sendFriendRequest(c *gin.Context) {
	var req friendRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !self(c, req.SenderWallet) {
		return
	}
	res, err := a.Svc.SendFriendRequest(c.Request.Context(), caller(c), service.FriendRequestInput{ReceiverWallet: req.ReceiverWallet})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Tags        friend
// @Summary     answer friend request
// @Description the caller is the receiver of the pending request
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     respondFriendReq true "request and answer"
// @Success     200  {object} model.FriendRequest
// @Failure     400  {object} service.ErrRes
// @Failure     403  {object} service.ErrRes
// @Router      /user/friend/request [put]
func (a *API) respondFriendRequest(c *gin.Context) {
	var req respondFriendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !self(c, req.ReceiverWallet) {
		return
	}
	res, err := a.Svc.RespondFriendRequest(c.Request.Context(), caller(c), service.RespondFriendRequestInput{
		SenderWallet: req.SenderWallet,
		Accepted:     req.Accepted,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        friend
// @Summary     pending friend requests
// @Produce     json
// @Param       walletAddress query    string true  "wallet address"
// @Param       type          query    string true  "sent or received"
// @Param       page          query    int    false "Page, default 1"
// @Param       limit         query    int    false "Page size, default 10"
// @Success     200           {object} service.Page[model.FriendRequest]
// @Failure     400           {object} service.ErrRes
// @Router      /user/friend/requests [get]
func (a *API) friendRequests(c *gin.Context) {
	req := struct {
		service.PageReq
		Wallet string `form:"walletAddress"`
		Type   string `form:"type"`
	}{}
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.FriendRequests(c.Request.Context(), req.Wallet, req.Type, req.PageReq)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        friend
// @Summary     friends of a wallet
// @Produce     json
// @Param       walletAddress query    string true  "wallet address"
// @Param       page          query    int    false "Page, default 1"
// @Param       limit         query    int    false "Page size, default 10"
// @Success     200           {object} service.Page[model.User]
// @Failure     400           {object} service.ErrRes
// @Router      /user/friends [get]
func (a *API) friends(c *gin.Context) {
	req := struct {
		service.PageReq
		Wallet string `form:"walletAddress"`
	}{}
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.Friends(c.Request.Context(), req.Wallet, req.PageReq)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        friend
// @Summary     remove friend
// @Description the caller must be one side of the friendship
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     removeFriendReq true "both wallets"
// @Success     200  {object} map[string]string
// @Failure     400  {object} service.ErrRes
// @Failure     403  {object} service.ErrRes
// @Router      /user/friend [delete]
func (a *API) removeFriend(c *gin.Context) {
	var req removeFriendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	me := caller(c)
	other := req.User2Wallet
	switch me {
	case strings.ToLower(strings.TrimSpace(req.User1Wallet)):
	case strings.ToLower(strings.TrimSpace(req.User2Wallet)):
		other = req.User1Wallet
	default:
		fail(c, service.Forbidden("You can only act on your own account"))
		return
	}
	if err := a.Svc.RemoveFriend(c.Request.Context(), me, other); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}
