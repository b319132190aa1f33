// Package server exposes the checker over HTTP: a student-facing form and a
// small JSON API.
package server

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"kirchhoff"
	"kirchhoff/internal/logging"
	"kirchhoff/internal/metrics"
)

// Server holds the immutable configuration and the collaborators built from
// it. It has no mutable state besides the in-flight submission log calls.
type Server struct {
	cfg       kirchhoff.Configuration
	repo      *kirchhoff.Repository
	checker   *kirchhoff.Checker
	validator *kirchhoff.EquationValidator
	logger    kirchhoff.Logger
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer
	log       *slog.Logger
	now       func() time.Time

	pending sync.WaitGroup
}

// New wires a server. reg receives the service metrics and backs /metrics.
func New(cfg kirchhoff.Configuration, repo *kirchhoff.Repository, logger kirchhoff.Logger, reg *prometheus.Registry) *Server {
	if logger == nil {
		logger = kirchhoff.NopLogger{}
	}

	return &Server{
		cfg:       cfg,
		repo:      repo,
		checker:   kirchhoff.NewChecker(repo, cfg),
		validator: kirchhoff.NewEquationValidator(repo, cfg),
		logger:    logger,
		metrics:   metrics.New(reg),
		gatherer:  reg,
		log:       logging.New("server"),
		now:       time.Now,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.log))
	router.SetHTMLTemplate(template.Must(template.New("form.html").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).Parse(formTemplate)))

	SetupRoutes(router, s)
	return router
}

// Wait blocks until every dispatched submission log call has returned.
func (s *Server) Wait() {
	s.pending.Wait()
}

// dispatch sends rec to the submission logger without blocking the
// response. Failures are logged and counted only.
func (s *Server) dispatch(rec kirchhoff.SubmissionRecord) {
	if _, ok := s.logger.(kirchhoff.NopLogger); ok {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		err := s.logger.Log(context.Background(), rec)
		switch {
		case errors.Is(err, kirchhoff.ErrRateLimited):
			s.metrics.RecordLog(metrics.LogDropped)
			s.log.Warn("submission log dropped", "id", rec.ID, "error", err)
		case err != nil:
			s.metrics.RecordLog(metrics.LogFailed)
			s.log.Warn("submission log failed", "id", rec.ID, "error", err)
		default:
			s.metrics.RecordLog(metrics.LogSent)
			s.log.Debug("submission logged", "id", rec.ID, "kind", rec.Kind)
		}
	}()
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start))
	}
}
