package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmjubaer/white-black-server/internal/domain"
	ordersvc "github.com/jmjubaer/white-black-server/internal/service/order"
)

// confirmOrderHandler serves both confirmation pathways: with cart
// reconciliation (the canonical checkout) and commit-only.
func confirmOrderHandler(svc *ordersvc.Service, logger *log.Logger, reconcile bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.ConfirmInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
			return
		}
		conf, err := svc.Confirm(c.Request.Context(), in, reconcile)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidPayload) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "productId must be an array"})
				return
			}
			serverError(c, logger, err, "An error occurred while confirming the order")
			return
		}
		c.JSON(http.StatusOK, conf)
	}
}

func listOrdersHandler(svc *ordersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching orders")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(orders))
	}
}

func getOrderHandler(svc *ordersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusOK, gin.H{})
			default:
				serverError(c, logger, err, "Internal Server Error")
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func orderStatusHandler(svc *ordersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in orderStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status payload"})
			return
		}
		err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			case errors.Is(err, domain.ErrInvalidPayload):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status payload"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or no changes made"})
			default:
				serverError(c, logger, err, "Failed to update order status")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
