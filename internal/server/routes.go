package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, s *Server) {
	router.GET("/health", s.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	router.GET("/", s.ShowForm)
	router.POST("/", s.SubmitForm)

	// API version 1 group
	v1 := router.Group("/v1")
	{
		v1.GET("/sets", s.ListSets)
		v1.GET("/sets/:id", s.GetSet)
		v1.POST("/answers", s.HandleAnswers)
		if s.cfg.EquationChecking {
			v1.POST("/equations", s.HandleEquations)
		}
	}
}
