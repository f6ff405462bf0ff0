package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmjubaer/white-black-server/internal/domain"
	contactrepo "github.com/jmjubaer/white-black-server/internal/repository/contact"
)

func listContactHandler(repo contactrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := repo.List(c.Request.Context())
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching data")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(messages))
	}
}

func createContactHandler(repo contactrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.ContactMessage
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact payload"})
			return
		}
		created, err := repo.Insert(c.Request.Context(), in)
		if err != nil {
			serverError(c, logger, err, "An error occurred while saving the message")
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func deleteContactHandler(repo contactrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := domain.ValidateID(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			serverError(c, logger, err, "An error occurred while deleting the contact")
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
	}
}
