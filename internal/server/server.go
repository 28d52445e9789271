package server

import (
	"net/http"
	"net/http/pprof"

	"github.com/gin-gonic/gin"
	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/aggregator"
	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/model"
)

// Server exposes an aggregated record collection over a read-only HTTP API.
type Server struct {
	engine  *gin.Engine
	records model.Collection
	port    string
}

// New creates a server for the given collection.
func New(records model.Collection, port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Disable automatic redirects that cause 301 issues.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	s := &Server{
		engine:  engine,
		records: records,
		port:    port,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check.
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"total_records": len(s.records),
		})
	})

	// Full collection, optionally filtered by exact field equality.
	s.engine.GET("/api/records", func(c *gin.Context) {
		field := c.Query("field")
		value := c.Query("value")

		records := s.records
		if field != "" {
			records = records.FilterByField(field, value)
		}
		c.JSON(http.StatusOK, recordList(records))
	})

	// Shortcut for the blocked-traffic view.
	s.engine.GET("/api/records/blocked", func(c *gin.Context) {
		c.JSON(http.StatusOK, recordList(s.records.FilterByField("action", "BLOCKED")))
	})

	// Summary counts.
	s.engine.GET("/api/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, aggregator.Summarize(s.records))
	})

	// pprof profiling endpoints.
	s.engine.GET("/debug/pprof/", gin.WrapF(pprof.Index))
	s.engine.GET("/debug/pprof/cmdline", gin.WrapF(pprof.Cmdline))
	s.engine.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
	s.engine.GET("/debug/pprof/symbol", gin.WrapF(pprof.Symbol))
	s.engine.GET("/debug/pprof/trace", gin.WrapF(pprof.Trace))
	s.engine.GET("/debug/pprof/allocs", gin.WrapH(pprof.Handler("allocs")))
	s.engine.GET("/debug/pprof/heap", gin.WrapH(pprof.Handler("heap")))
	s.engine.GET("/debug/pprof/goroutine", gin.WrapH(pprof.Handler("goroutine")))
}

// recordList normalizes a possibly-nil collection to an empty JSON array.
func recordList(records model.Collection) model.Collection {
	if records == nil {
		return model.Collection{}
	}
	return records
}

// Handler returns the underlying HTTP handler (used by tests).
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start runs the server. Blocks until the server is stopped.
func (s *Server) Start() error {
	return s.engine.Run(":" + s.port)
}
