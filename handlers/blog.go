package handlers

import (
	"context"
	"errors"
	"net/http"

	"readycleans/models"
	"readycleans/services/feed"
	"readycleans/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlogReader is the read side of the blog service.
type BlogReader interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	Get(ctx context.Context, id string) (models.BlogPost, error)
}

func NewListBlogsHandler(blogs BlogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := blogs.List(c.Request.Context())
		if err != nil {
			getLogger(c).Error("list blog posts", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load blog posts", err.Error())
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

func NewGetBlogHandler(blogs BlogReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := blogs.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, feed.ErrPostNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Blog post not found", "")
			return
		}
		if err != nil {
			getLogger(c).Error("get blog post", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load blog post", err.Error())
			return
		}
		c.JSON(http.StatusOK, post)
	}
}
