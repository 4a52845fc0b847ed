package app

import (
	"github.com/gin-gonic/gin"

	"coursepay/pkg/logger"
	"coursepay/pkg/metrics"
)

func NewGinEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(
		metrics.GinMiddleware(),
		logger.CorrelationMiddleware(),
		logger.RequestLogger(),
		gin.Recovery(),
	)
	return engine
}
