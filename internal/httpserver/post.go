package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmjubaer/white-black-server/internal/domain"
	postrepo "github.com/jmjubaer/white-black-server/internal/repository/post"
)

func listPostsHandler(repo postrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := repo.List(c.Request.Context())
		if err != nil {
			serverError(c, logger, err, "An error occurred while fetching data")
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(posts))
	}
}

func getPostHandler(repo postrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := domain.ValidateID(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
			return
		}
		post, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusOK, gin.H{})
				return
			}
			serverError(c, logger, err, "An error occurred while fetching the post")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func createPostHandler(repo postrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.Post
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post payload"})
			return
		}
		created, err := repo.Insert(c.Request.Context(), in)
		if err != nil {
			serverError(c, logger, err, "An error occurred while creating the post")
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func updatePostHandler(repo postrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := domain.ValidateID(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
			return
		}
		var patch domain.PostPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post payload"})
			return
		}
		modified, err := repo.Update(c.Request.Context(), id, patch)
		if err != nil {
			serverError(c, logger, err, "An error occurred while updating the post")
			return
		}
		if modified == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found or no changes made"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully"})
	}
}

func deletePostHandler(repo postrepo.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := domain.ValidateID(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
			return
		}
		deleted, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			serverError(c, logger, err, "An error occurred while deleting the post")
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
	}
}
