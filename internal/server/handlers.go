package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/orderdesk/internal/clients"
	"github.com/matthieukhl/orderdesk/internal/models"
	"github.com/matthieukhl/orderdesk/internal/store"
)

// POST bodies arrive wrapped in a data envelope: {"data": {...}}.

type connectOperatorRequest struct {
	Data struct {
		Email   string `json:"email"`
		Request string `json:"request"`
	} `json:"data"`
}

type addClientRequest struct {
	Data struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"data"`
}

type createOrderRequest struct {
	Data struct {
		Email string `json:"email"`
		// Total is a pointer so a zero amount passes validation; only a
		// missing field is rejected.
		Total *float64 `json:"total"`
	} `json:"data"`
}

// companyInfo returns the static company details, provisioning a client
// record for unseen emails. A missing email query is looked up as the empty
// string, matching the lookup-or-provision semantics.
func (s *Server) companyInfo(c *gin.Context) {
	email := c.Query("email")

	_, created, err := s.clients.LookupOrProvision(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to resolve client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_new_client": created,
		"company_info":  models.DefaultCompanyInfo(),
	})
}

func (s *Server) getClientOrders(c *gin.Context) {
	email := c.Query("email")

	if _, err := s.clients.Lookup(c.Request.Context(), email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to look up client"})
		return
	}

	orderList, err := s.orders.ListForClient(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_new_client": false,
		"orders":        orderList,
	})
}

// connectOperator acknowledges a handoff request. No operator system is
// wired up; the endpoint validates and replies with a stub confirmation.
func (s *Server) connectOperator(c *gin.Context) {
	var req connectOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Data.Email == "" || req.Data.Request == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "please provide an email and a request"})
		return
	}

	if _, err := s.clients.Lookup(c.Request.Context(), req.Data.Email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to look up client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Your request has been forwarded to an operator. Please wait for a reply.",
	})
}

func (s *Server) addClient(c *gin.Context) {
	var req addClientRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Data.Email == "" || req.Data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "please provide an email and a name"})
		return
	}

	client, err := s.clients.Register(c.Request.Context(), req.Data.Email, req.Data.Name)
	if err != nil {
		if errors.Is(err, clients.ErrAlreadyRegistered) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "client already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to add client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "client successfully added",
		"client":  client,
	})
}

func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Data.Email == "" || req.Data.Total == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "please provide an email and an order total"})
		return
	}

	if _, err := s.clients.Lookup(c.Request.Context(), req.Data.Email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to look up client"})
		return
	}

	order, err := s.orders.Place(c.Request.Context(), req.Data.Email, *req.Data.Total)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "order successfully created",
		"order":   order,
	})
}
