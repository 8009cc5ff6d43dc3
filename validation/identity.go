package validation

import (
	"unicode/utf8"

	"product-service/models"
)

// ValidateIdentity checks the identity section: title bounds, category and
// subcategory presence, a successful schema lookup, brand bounds unless the
// seller declared no brand, and external product id type plus checksum unless
// the seller declared no external id. All violations are collected into one
// map; the stage fails when the map is non-empty.
func ValidateIdentity(identity *models.SubmissionIdentity, schema *models.SubcategorySchema, limits models.Limits) models.ErrorMap {
	errs := models.ErrorMap{}

	if n := utf8.RuneCountInString(identity.Title); n < limits.TitleMin || n > limits.TitleMax {
		errs.Add(models.FieldPath(StageIdentity, "title"), models.NewAppError(
			models.ErrID("title"),
			map[string]any{"Min": limits.TitleMin, "Max": limits.TitleMax},
		))
	}

	if identity.Category == "" {
		errs.Add(models.FieldPath(StageIdentity, "category"), models.NewAppError(models.ErrID("category"), nil))
	}
	if identity.Subcategory == "" {
		errs.Add(models.FieldPath(StageIdentity, "subcategory"), models.NewAppError(models.ErrID("subcategory"), nil))
	}

	// No matching schema is a validation failure, not a deferred lookup.
	if schema == nil {
		errs.Add(models.FieldPath(StageIdentity, "schema"), models.NewAppError(
			models.ErrID("schema_not_found"),
			map[string]any{"Category": identity.Category, "Subcategory": identity.Subcategory},
		))
	}

	if !identity.NoBrand {
		if n := utf8.RuneCountInString(identity.BrandName); n < limits.BrandMin || n > limits.BrandMax {
			errs.Add(models.FieldPath(StageIdentity, "brand_name"), models.NewAppError(
				models.ErrID("brand_name"),
				map[string]any{"Min": limits.BrandMin, "Max": limits.BrandMax},
			))
		}
	}

	if !identity.NoExternalProductID {
		idType := identity.ExternalProductIDType
		if !externalIDTypeAllowed(idType) {
			errs.Add(models.FieldPath(StageIdentity, "external_product_id_type"), models.NewAppError(
				models.ErrID("external_product_id_type"),
				map[string]any{"Type": idType},
			))
		} else if !ValidateExternalProductID(idType, identity.ExternalProductID) {
			errs.Add(models.FieldPath(StageIdentity, "external_product_id"), models.NewAppError(
				models.ErrID("external_product_id"),
				map[string]any{"Type": idType},
			))
		}
	}

	return errs
}

func externalIDTypeAllowed(idType string) bool {
	switch idType {
	case "upc", "ean", "isbn", "gtin":
		return true
	default:
		return false
	}
}
