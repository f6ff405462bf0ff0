package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmjubaer/white-black-server/internal/domain"
	"github.com/jmjubaer/white-black-server/internal/service/catalog"
)

const (
	newLaunchedLimit     = 10
	homeAccessoriesLimit = 12
	statusListingLimit   = 8
)

func listProductsHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(
			c.Request.Context(),
			c.Param("category"),
			c.Query("minPrice"),
			c.Query("maxPrice"),
			c.Query("status"),
		)
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching products")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(products))
	}
}

func pricesAndStockHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summarize(c.Request.Context(), c.Param("category"))
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching prices and stock")
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func restrictedCategoryHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListRestricted(c.Request.Context(), c.Query("category"))
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCategory) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			serverError(c, logger, err, "An error occurred while fetching products")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(products))
	}
}

// The status listing takes its value from the `category` query parameter;
// the storefront client has always sent it under that name.
func productsByStatusHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ByStatus(c.Request.Context(), c.Query("category"), statusListingLimit)
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching products")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(products))
	}
}

func searchProductsHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Search(c.Request.Context(), c.Param("searchtext"))
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching products")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(products))
	}
}

func newLaunchedHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.Recent(c.Request.Context(), newLaunchedLimit)
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching new launched products")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(products))
	}
}

func homeAccessoriesHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.RecentByCategory(c.Request.Context(), "accessories", homeAccessoriesLimit)
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching new launched products")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(products))
	}
}

func getProductHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			case errors.Is(err, domain.ErrNotFound):
				// A missing product is answered with an empty object, not 404.
				c.JSON(http.StatusOK, gin.H{})
			default:
				serverError(c, logger, err, "Internal Server Error")
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func addProductHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.Product
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
			return
		}
		created, err := svc.Add(c.Request.Context(), in)
		if err != nil {
			serverError(c, logger, err, "An error occurred while adding the product")
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func updateProductHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch domain.ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
			return
		}
		err := svc.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			case errors.Is(err, domain.ErrInvalidPayload):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			default:
				serverError(c, logger, err, "An error occurred while updating the product")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	}
}

func deleteProductHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			default:
				serverError(c, logger, err, "An error occurred while deleting the product")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

type cartProductsRequest struct {
	ProductIDs []string `json:"productIds"`
}

func cartProductsHandler(svc *catalog.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartProductsRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product IDs array is required"})
			return
		}
		products, err := svc.ByIDs(c.Request.Context(), in.ProductIDs)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidPayload):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product IDs array is required"})
			case errors.Is(err, domain.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			default:
				serverError(c, logger, err, "An error occurred while fetching products")
			}
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(products))
	}
}
