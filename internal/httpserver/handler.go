package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	logbookHTTP "halsologg/internal/logbook/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.gin.Use(gin.Recovery())

	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.logbookHandler != nil {
		api := srv.gin.Group("/api/v1")
		logbookHTTP.RegisterRoutes(api, srv.logbookHandler, srv.mw)
		srv.l.Infof(ctx, "Logbook routes registered under /api/v1")
	}

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
