package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "wallet-mapper/docs/swagger"
	"wallet-mapper/internal/handler"
	"wallet-mapper/pkg/monitor"
	"wallet-mapper/pkg/validator"
)

// NewHTTPRouter 初始化并返回一个 Gin Engine
func NewHTTPRouter(tx *handler.TransactionHandler, accounts *handler.AccountHandler) *gin.Engine {
	monitor.Init()
	validator.Init()

	// 默认中间件: Logger, Recovery
	r := gin.Default()
	r.Use(monitor.PrometheusMiddleware())

	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		transfer := api.Group("/transfer")
		transfer.POST("/prepare", tx.PrepareTransfer)
		transfer.POST("/validate", tx.ValidateTransfer)

		importance := api.Group("/importance-transfer")
		importance.POST("/activate", tx.ActivateImportance)
		importance.POST("/deactivate", tx.DeactivateImportance)

		api.POST("/account/public-key", accounts.RememberPublicKey)
	}

	return r
}
