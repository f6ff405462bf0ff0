package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmjubaer/white-black-server/internal/domain"
	contentrepo "github.com/jmjubaer/white-black-server/internal/repository/content"
)

// Each content slot serves its value under its own JSON field: the moving
// text banners use "text", the highlight link uses "link".
func registerContentRoutes(router *gin.Engine, repo contentrepo.Repository, logger *log.Logger) {
	textSlots := []struct {
		path string
		slot string
	}{
		{"/top-moving-text", domain.SlotTopMovingText},
		{"/banner-moving-text", domain.SlotBannerMovingText},
		{"/second-banner-moving-text", domain.SlotSecondBannerMovingText},
	}
	for _, s := range textSlots {
		router.GET(s.path, getContentHandler(repo, logger, s.slot, "text"))
		router.PUT(s.path+"/:id", upsertContentHandler(repo, logger, s.slot, "text"))
	}
	router.GET("/highlight-product-link", getContentHandler(repo, logger, domain.SlotHighlightProductLink, "link"))
	router.PUT("/highlight-product-link/:id", upsertContentHandler(repo, logger, domain.SlotHighlightProductLink, "link"))
}

func getContentHandler(repo contentrepo.Repository, logger *log.Logger, slot, field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		block, err := repo.Get(c.Request.Context(), slot)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusOK, gin.H{})
				return
			}
			serverError(c, logger, err, "An error occurred while fetching data")
			return
		}
		c.JSON(http.StatusOK, gin.H{"_id": block.ID, field: block.Value})
	}
}

type contentUpsertRequest struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

func upsertContentHandler(repo contentrepo.Repository, logger *log.Logger, slot, field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := domain.ValidateID(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
			return
		}
		var in contentUpsertRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content payload"})
			return
		}
		value := in.Text
		if field == "link" {
			value = in.Link
		}
		block, err := repo.Upsert(c.Request.Context(), id, slot, value)
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching data")
			return
		}
		c.JSON(http.StatusOK, gin.H{"_id": block.ID, field: block.Value})
	}
}
