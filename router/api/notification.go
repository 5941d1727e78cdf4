package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"nftmarket/service"
)

func Notification(e gin.IRouter, a *API) {
	e.GET("/notification", a.Auth, a.notifications)
	e.PUT("/notification", a.Auth, a.markRead)
}

// @Tags        notification
// @Summary     caller notifications
// @Description newest first, failed deliveries are hidden
// @Produce     json
// @Security    Bearer
// @Param       page  query    int false "Page, default 1"
// @Param       limit query    int false "Page size, default 10"
// @Success     200   {object} service.Page[model.Notification]
// @Failure     401   {object} service.ErrRes
// @Router      /notification [get]
func (a *API) notifications(c *gin.Context) {
	var req service.PageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.Notifications(c.Request.Context(), caller(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Tags        notification
// @Summary     mark notification read
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body     object{notification_id=string} true "notification to mark"
// @Success     200  {object} model.Notification
// @Failure     400  {object} service.ErrRes
// @Failure     403  {object} service.ErrRes
// @Router      /notification [put]
func (a *API) markRead(c *gin.Context) {
	req := struct {
		NotificationID string `json:"notification_id" binding:"required"`
	}{}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := a.Svc.MarkRead(c.Request.Context(), caller(c), req.NotificationID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
