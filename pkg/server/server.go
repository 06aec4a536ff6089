package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	server *http.Server
	router *gin.Engine
}

func NewServer(router *gin.Engine, port int) *HTTPServer {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s := &HTTPServer{
		server: server,
		router: router,
	}
	s.registerRoutes()
	return s
}

// Start serves in the background; a listen failure other than a clean
// shutdown is fatal.
func (s *HTTPServer) Start() {
	go func() {
		log.Printf("Starting HTTP server at %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	log.Println("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
