package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"product-service/models"
	"product-service/repository"
)

// ProductServiceAPI is the service surface the controller depends on, kept as
// an interface so handler tests can inject fakes.
type ProductServiceAPI interface {
	CreateProduct(ctx context.Context, sess *models.SessionContext, sub *models.ProductSubmission) (*models.Product, models.ErrorMap, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}

type ProductController struct {
	service   ProductServiceAPI
	validator *RequestValidator
}

func NewProductController(service ProductServiceAPI) *ProductController {
	return &ProductController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

// CreateProduct handles POST /products. A submission that fails validation
// gets a 400 with the failing stage's full error map, each entry addressable
// by its field path for UI binding.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	sess := pc.validator.ParseSession(c)

	var sub models.ProductSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, errs, err := pc.service.CreateProduct(c.Request.Context(), sess, &sub)
	if err != nil {
		handleCreateError(c, err)
		return
	}
	if !errs.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	c.JSON(http.StatusCreated, createProductResponse{
		ID:      product.ID,
		Slug:    product.Slug,
		Status:  string(product.Status),
		Message: "products.create.successfully",
	})
}

// GetProductByID handles GET /products/:id.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	if err := pc.validator.ValidateProductID(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := pc.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		zap.L().Error("failed to fetch product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetProductBySlug handles GET /products/slug/:slug.
func (pc *ProductController) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product slug"})
		return
	}

	product, err := pc.service.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		zap.L().Error("failed to fetch product by slug", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, product)
}
