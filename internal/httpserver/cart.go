package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmjubaer/white-black-server/internal/domain"
	cartrepo "github.com/jmjubaer/white-black-server/internal/repository/cart"
)

type addCartItemRequest struct {
	ProductID     string `json:"productId"`
	Title         string `json:"title"`
	Price         string `json:"price"`
	Size          string `json:"size"`
	Quantity      int    `json:"quantity"`
	CustomerEmail string `json:"customerEmail"`
}

func addCartItemHandler(repo cartrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in addCartItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart payload"})
			return
		}
		if err := domain.ValidateID(in.ProductID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		item, err := repo.Create(c.Request.Context(), cartrepo.CreateItemInput{
			ProductID:     in.ProductID,
			Title:         in.Title,
			Price:         in.Price,
			Size:          in.Size,
			Quantity:      in.Quantity,
			CustomerEmail: in.CustomerEmail,
		})
		if err != nil {
			serverError(c, logger, err, "An error occurred while adding the product add to card")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func listCartHandler(repo cartrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context(), c.Query("email"))
		if err != nil {
			serverError(c, logger, err, "product cart data not found")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(items))
	}
}

func deleteCartItemHandler(repo cartrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := domain.ValidateID(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			serverError(c, logger, err, "An error occurred while deleting the cart item")
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted successfully"})
	}
}
