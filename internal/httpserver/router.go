package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cartrepo "github.com/jmjubaer/white-black-server/internal/repository/cart"
	contactrepo "github.com/jmjubaer/white-black-server/internal/repository/contact"
	contentrepo "github.com/jmjubaer/white-black-server/internal/repository/content"
	postrepo "github.com/jmjubaer/white-black-server/internal/repository/post"
	"github.com/jmjubaer/white-black-server/internal/service/catalog"
	ordersvc "github.com/jmjubaer/white-black-server/internal/service/order"
)

// Deps carries the collaborators the routes need. Simple pass-through
// surfaces get their repository directly; the catalog and order workflows
// go through their services.
type Deps struct {
	CatalogSvc  *catalog.Service
	OrderSvc    *ordersvc.Service
	CartRepo    cartrepo.Repository
	PostRepo    postrepo.Repository
	ContentRepo contentrepo.Repository
	ContactRepo contactrepo.Repository
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the White And Black Server")
	})
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	// Catalog.
	router.GET("/products/:category", listProductsHandler(deps.CatalogSvc, logger))
	router.GET("/products/:category/prices-and-stock", pricesAndStockHandler(deps.CatalogSvc, logger))
	router.GET("/products/category", restrictedCategoryHandler(deps.CatalogSvc, logger))
	router.GET("/products/status", productsByStatusHandler(deps.CatalogSvc, logger))
	router.GET("/products/search/:searchtext", searchProductsHandler(deps.CatalogSvc, logger))
	router.GET("/product/newlaunched", newLaunchedHandler(deps.CatalogSvc, logger))
	router.GET("/product/home/accessories", homeAccessoriesHandler(deps.CatalogSvc, logger))
	router.GET("/product/:id", getProductHandler(deps.CatalogSvc, logger))
	router.POST("/product/addproducts", addProductHandler(deps.CatalogSvc, logger))
	router.POST("/admin/product/add", addProductHandler(deps.CatalogSvc, logger))
	router.POST("/collection/addProducts", addProductHandler(deps.CatalogSvc, logger))
	router.PUT("/product/update/:id", updateProductHandler(deps.CatalogSvc, logger))
	router.DELETE("/product/delete/:id", deleteProductHandler(deps.CatalogSvc, logger))
	router.POST("/get-cart-products", cartProductsHandler(deps.CatalogSvc, logger))

	// Orders.
	router.POST("/api/confirmOrder", confirmOrderHandler(deps.OrderSvc, logger, true))
	router.POST("/api/placeOrder", confirmOrderHandler(deps.OrderSvc, logger, false))
	router.GET("/order", listOrdersHandler(deps.OrderSvc, logger))
	router.GET("/order/:id", getOrderHandler(deps.OrderSvc, logger))
	router.PUT("/order/status/:id", orderStatusHandler(deps.OrderSvc, logger))

	// Cart.
	router.POST("/cart", addCartItemHandler(deps.CartRepo, logger))
	router.GET("/cart", listCartHandler(deps.CartRepo, logger))
	router.DELETE("/cart/:id", deleteCartItemHandler(deps.CartRepo, logger))

	// Posts.
	router.GET("/post", listPostsHandler(deps.PostRepo, logger))
	router.GET("/post/:id", getPostHandler(deps.PostRepo, logger))
	router.POST("/post", createPostHandler(deps.PostRepo, logger))
	router.PUT("/post/:id", updatePostHandler(deps.PostRepo, logger))
	router.DELETE("/post/:id", deletePostHandler(deps.PostRepo, logger))

	// Content blocks.
	registerContentRoutes(router, deps.ContentRepo, logger)

	// Contact messages.
	router.GET("/contact-us", listContactHandler(deps.ContactRepo, logger))
	router.POST("/contact-us", createContactHandler(deps.ContactRepo, logger))
	router.DELETE("/contact-us/:id", deleteContactHandler(deps.ContactRepo, logger))

	return router
}

// serverError logs the cause and answers with a generic message; store
// internals never leak to clients.
func serverError(c *gin.Context, logger *log.Logger, err error, msg string) {
	logger.Printf("%s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// emptyIfNil keeps empty result sets encoding as [] instead of null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
