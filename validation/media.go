package validation

import (
	"errors"

	"product-service/imaging"
	"product-service/models"
)

// ValidateMedia checks the image count per variant (or for the single flat
// form) and decodes every attachment against the configured policy. A failed
// decode never stops sibling decodes: all attachments are attempted and all
// errors collected before the stage fails as a whole. Successful decode
// descriptors are returned because the upload step needs them later.
func ValidateMedia(sub *models.ProductSubmission, dec ImageDecoder, limits models.Limits) (models.ErrorMap, DecodeResults) {
	errs := models.ErrorMap{}
	decoded := DecodeResults{}
	media := sub.Media
	if media == nil {
		media = &models.SubmissionMedia{}
	}
	policy := imaging.Policy{
		MaxBytes:       limits.ImageMaxBytes,
		AllowedFormats: limits.ImageFormats,
		MinWidth:       limits.ImageMinWidth,
		MinHeight:      limits.ImageMinHeight,
		MaxWidth:       limits.ImageMaxWidth,
		MaxHeight:      limits.ImageMaxHeight,
	}

	if sub.HasVariants {
		declared := declaredVariantIDs(sub)
		if len(declared) == 0 {
			errs.Add(models.FieldPath(StageMedia, "images"), imageCountError(limits))
			return errs, decoded
		}
		// Every declared variant is checked, present in the media section or
		// not; a missing entry fails the image count for that variant.
		for _, key := range declared {
			validateAttachments(errs, decoded, dec, policy, limits, key, media.Variants[key])
		}
		for key := range media.Variants {
			if !containsKey(declared, key) {
				errs.Add(models.FieldPath(StageMedia, key), unknownVariantError(key))
			}
		}
		return errs, decoded
	}

	validateAttachments(errs, decoded, dec, policy, limits, models.DefaultVariantKey, media.Images)
	return errs, decoded
}

func validateAttachments(errs models.ErrorMap, decoded DecodeResults, dec ImageDecoder, policy imaging.Policy, limits models.Limits, variantKey string, attachments []*models.MediaAttachment) {
	countPath := models.FieldPath(StageMedia, variantKey, "images")
	if variantKey == models.DefaultVariantKey {
		countPath = models.FieldPath(StageMedia, "images")
	}
	if n := len(attachments); n < limits.ImagesMin || n > limits.ImagesMax {
		errs.Add(countPath, imageCountError(limits))
	}

	for _, att := range attachments {
		path := models.FieldPath(StageMedia, variantKey, att.ID)
		if variantKey == models.DefaultVariantKey {
			path = models.FieldPath(StageMedia, att.ID)
		}

		desc, err := dec.Decode(att.Data, policy)
		if err != nil {
			errs.Add(path, decodeFailureError(err))
			continue
		}
		if decoded[variantKey] == nil {
			decoded[variantKey] = map[string]*imaging.Descriptor{}
		}
		decoded[variantKey][att.ID] = desc
	}
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func unknownVariantError(key string) *models.AppError {
	return models.NewAppError(models.ErrID("variant_unknown"), map[string]any{"ID": key})
}

func imageCountError(limits models.Limits) *models.AppError {
	return models.NewAppError(
		models.ErrID("image_count"),
		map[string]any{"Min": limits.ImagesMin, "Max": limits.ImagesMax},
	)
}

// decodeFailureError maps a classified decoder rejection onto its message
// identifier. An unclassified error still fails the attachment, as a generic
// corrupt encoding.
func decodeFailureError(err error) *models.AppError {
	var de *imaging.DecodeError
	if !errors.As(err, &de) {
		return models.NewAppError(models.ErrID("image_corrupt"), nil)
	}
	switch de.Kind {
	case imaging.FailureOversize:
		return models.NewAppError(models.ErrID("image_oversize"), nil)
	case imaging.FailureCorruptEncoding:
		return models.NewAppError(models.ErrID("image_corrupt"), nil)
	case imaging.FailureUnknownFormat:
		return models.NewAppError(models.ErrID("image_format_unknown"), nil)
	case imaging.FailureDisallowedFormat:
		return models.NewAppError(models.ErrID("image_format_not_allowed"), nil)
	case imaging.FailureTooSmall:
		return models.NewAppError(models.ErrID("image_too_small"), nil)
	case imaging.FailureTooLarge:
		return models.NewAppError(models.ErrID("image_too_large"), nil)
	case imaging.FailureUndetectableDimensions:
		return models.NewAppError(models.ErrID("image_dimensions_unknown"), nil)
	default:
		return models.NewAppError(models.ErrID("image_corrupt"), nil)
	}
}
