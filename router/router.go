package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "nftmarket/docs"
	"nftmarket/middleware"
	"nftmarket/router/api"
)

// New builds the engine with every route of the market
func New(a *api.API, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(a.Log), middleware.Logger(a.Log))
	// Allow cross-domain access from the configured front ends
	r.Use(middleware.Cors(corsOrigins))
	r.ContextWithFallback = true

	r.GET("/healthz", health(a))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Set up accessible routes
	api.Auth(r, a)
	api.User(r, a)
	api.Friend(r, a)
	api.NFT(r, a)
	api.Market(r, a)
	api.Bid(r, a)
	api.Trade(r, a)
	api.Notification(r, a)
	return r
}

// @Tags        platform
// @Summary     health check
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     503 {object} service.ErrRes
// @Router      /healthz [get]
func health(a *api.API) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := a.Svc.DB().DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			a.Log.Error("health check failed", "err", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"err_str": "Database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
