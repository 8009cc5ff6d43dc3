package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"product-service/models"
	"product-service/repository"
	"product-service/validation"
)

// Uploader stores one successfully decoded attachment in object storage.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// AuditSink receives audit records for the compliance trail.
type AuditSink interface {
	Record(ctx context.Context, rec *models.AuditRecord)
}

// ProductService orchestrates the create path: audit snapshot, validation
// pipeline, persistence, image uploads.
type ProductService struct {
	repo     repository.ProductRepo
	pipeline *validation.Pipeline
	uploader Uploader
	audit    AuditSink
}

func NewProductService(repo repository.ProductRepo, pipeline *validation.Pipeline, uploader Uploader, audit AuditSink) *ProductService {
	return &ProductService{repo: repo, pipeline: pipeline, uploader: uploader, audit: audit}
}

// CreateProduct runs the full create flow. The returned ErrorMap is non-nil
// when the submission failed validation; the error covers infrastructure
// failures after validation passed. The audit record is emitted on every
// path, carrying the redacted submission snapshot.
func (s *ProductService) CreateProduct(ctx context.Context, sess *models.SessionContext, sub *models.ProductSubmission) (*models.Product, models.ErrorMap, error) {
	audit := models.NewAuditRecord(sess, models.EventProductCreate, models.EventStatusFail)
	audit.SetEventParameter(models.EventParameterProductCreate, models.ProductsCreateAuditable(sub))
	defer s.audit.Record(ctx, audit)

	result, errs := s.pipeline.Run(sess, sub)
	if !errs.Empty() {
		return nil, errs, nil
	}

	pro := result.Record.Product
	if err := s.repo.Create(ctx, pro); err != nil {
		audit.SetError(err.Error(), nil)
		return nil, nil, fmt.Errorf("persist product: %w", err)
	}

	if err := s.uploadImages(ctx, sub, result); err != nil {
		// The record is persisted; a failed upload is reported but does not
		// roll the product back. The seller re-uploads through media edit.
		// The audit record stays at its Fail status with the error attached.
		audit.SetError(err.Error(), nil)
		zap.L().Error("image upload failed after create",
			zap.String("product_id", pro.ID),
			zap.Error(err),
		)
		return pro, nil, nil
	}

	audit.Success()
	return pro, nil, nil
}

// GetProduct fetches one normalized product record.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// GetProductBySlug fetches one normalized product record by its URL slug.
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.repo.FindBySlug(ctx, slug)
}

// uploadImages stores every decoded attachment under a freshly generated key,
// grouped by the stable variant key from the normalization pass.
func (s *ProductService) uploadImages(ctx context.Context, sub *models.ProductSubmission, result *validation.Result) error {
	if sub.Media == nil {
		return nil
	}

	upload := func(variantTransient string, atts []*models.MediaAttachment) error {
		decoded := result.Decoded[variantTransient]
		if decoded == nil {
			return nil
		}
		stable, ok := result.Record.VariantKeys[variantTransient]
		if !ok {
			stable = result.Record.MainVariantKey
		}
		for _, att := range atts {
			desc, ok := decoded[att.ID]
			if !ok {
				continue
			}
			key := BuildImageKey(result.Record.Product.ID, stable, desc.Format)
			if err := s.uploader.Upload(ctx, key, att.Data, att.ContentType); err != nil {
				return fmt.Errorf("upload attachment %s: %w", att.ID, err)
			}
		}
		return nil
	}

	if sub.HasVariants {
		for transient, atts := range sub.Media.Variants {
			if err := upload(transient, atts); err != nil {
				return err
			}
		}
		return nil
	}
	return upload(models.DefaultVariantKey, sub.Media.Images)
}
