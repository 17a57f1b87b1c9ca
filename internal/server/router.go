// Package server assembles the HTTP surface: middleware, routes, and the
// gin engine the daemon serves.
package server

import (
	"net/http"
	"time"

	"github.com/crmforge-dev/crmforge/internal/api"
	"github.com/crmforge-dev/crmforge/internal/engine"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds the router with the full /api route table.
func New(store engine.CustomerStore, log *zap.SugaredLogger) *gin.Engine {
	h := &api.Handler{Store: store, Log: log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(log))
	r.Use(cors())

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", h.Ping)
		apiGroup.GET("/tags", h.Tags)
		apiGroup.GET("/customers", h.List)
		apiGroup.GET("/customers/export", h.Export)
		apiGroup.POST("/customers", h.Create)
		apiGroup.GET("/customers/:id", h.Get)
		apiGroup.PUT("/customers/:id", h.Update)
		apiGroup.DELETE("/customers/:id", h.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
	})

	return r
}

// requestID tags every request with a uuid, echoed in X-Request-ID and
// available to downstream logging.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", api.TotalCountHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
