package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleCreateError centralizes create error handling and logging.
func handleCreateError(c *gin.Context, err error) {
	zap.L().Error("Service failed to create product", zap.Error(err))
	if strings.Contains(err.Error(), "already exists") {
		c.JSON(http.StatusConflict, gin.H{"error": "Product already exists"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
}
