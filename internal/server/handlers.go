package server

import (
	"net/http"

	apperrors "cachebox/pkg/errors"
	"cachebox/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (s *Server) handleGetEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")

		s.mu.Lock()
		value, ok := s.cache.Get(key)
		s.mu.Unlock()

		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrKeyNotFound.Error()})
			return
		}

		// Hand out a copy; the cached slice must never be aliased by callers.
		c.JSON(http.StatusOK, GetEntryResponse{Key: key, Value: cloneBytes(value)})
	}
}

func (s *Server) handlePutEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")

		var req PutEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Value) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
			return
		}

		s.mu.Lock()
		s.cache.Set(key, cloneBytes(req.Value))
		size := s.cache.Len()
		s.mu.Unlock()

		logger.Debug("stored cache entry", "key", key, "size", size)
		c.JSON(http.StatusOK, StatsResponse{Size: size, Capacity: s.cache.Capacity()})
	}
}

func (s *Server) handleDeleteEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")

		s.mu.Lock()
		removed := s.cache.Remove(key)
		s.mu.Unlock()

		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": apperrors.ErrKeyNotFound.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		size := s.cache.Len()
		s.mu.Unlock()

		c.JSON(http.StatusOK, StatsResponse{Size: size, Capacity: s.cache.Capacity()})
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
