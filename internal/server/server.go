package server

import (
	"sync"

	"cachebox/internal/cache"
	"cachebox/internal/config"

	"github.com/gin-gonic/gin"
)

// Server exposes one cache instance over HTTP. The cache is not safe for
// concurrent use (even a Get reorders the recency list), so every handler
// takes mu around cache calls.
type Server struct {
	router *gin.Engine
	conf   *config.Config

	mu    sync.Mutex
	cache *cache.Cache[string, []byte]
}

// New creates a server around a cache sized from conf.
func New(conf *config.Config) (*Server, error) {
	c, err := cache.New[string, []byte](conf.Capacity)
	if err != nil {
		return nil, err
	}
	s := &Server{
		router: gin.Default(),
		conf:   conf,
		cache:  c,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHealthCheck())
	s.router.GET("/v1/stats", s.handleStats())
	s.router.GET("/v1/cache/:key", s.handleGetEntry())
	s.router.PUT("/v1/cache/:key", s.handlePutEntry())
	s.router.DELETE("/v1/cache/:key", s.handleDeleteEntry())
}

// Run starts serving on the configured address.
func (s *Server) Run() error {
	return s.router.Run(s.conf.Listen)
}
