package api

import "github.com/gin-gonic/gin"

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.Use(requestLogger(s.logger))
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/aspect-ratios", aspectRatiosHandler)
		api.GET("/qr", qrHandler)
		if s.limiter != nil {
			api.POST("/poster", s.limiter.Middleware(), s.posterHandler)
		} else {
			api.POST("/poster", s.posterHandler)
		}
	}
}
