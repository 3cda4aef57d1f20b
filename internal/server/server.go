package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/orderdesk/internal/clients"
	"github.com/matthieukhl/orderdesk/internal/orders"
	"github.com/matthieukhl/orderdesk/internal/store"
)

type Server struct {
	router  *gin.Engine
	store   store.Store
	clients *clients.Service
	orders  *orders.Service
}

// NewServer creates a new server instance
func NewServer(st store.Store, clientSvc *clients.Service, orderSvc *orders.Service) *Server {
	router := gin.Default()

	server := &Server{
		router:  router,
		store:   st,
		clients: clientSvc,
		orders:  orderSvc,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/company-info", s.companyInfo)
	s.router.GET("/get-client-orders", s.getClientOrders)
	s.router.POST("/connect-operator", s.connectOperator)
	s.router.POST("/add-client", s.addClient)
	s.router.POST("/create-order", s.createOrder)
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "store connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "orderdesk",
		"version": "0.1.0",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
