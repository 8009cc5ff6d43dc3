package validation

import (
	"strconv"
	"unicode/utf8"

	"product-service/models"
)

// ValidateDetails checks the structured details section against the
// subcategory attribute schema. In variant mode every variant form needs a
// unique non-empty id and a bounded title; all remaining fields, and the
// shared submission-level fields in both modes, must name a known schema
// attribute and pass its type-specific checks.
func ValidateDetails(sub *models.ProductSubmission, schema *models.SubcategorySchema, limits models.Limits) models.ErrorMap {
	errs := models.ErrorMap{}
	details := sub.Details
	if details == nil {
		details = &models.SubmissionDetails{}
	}

	for name, val := range details.Shared {
		validateSchemaField(errs, models.FieldPath(StageDetails, name), schema, name, val, false)
	}

	if !sub.HasVariants {
		for name, val := range details.Form {
			validateSchemaField(errs, models.FieldPath(StageDetails, name), schema, name, val, false)
		}
		return errs
	}

	seen := make(map[string]bool, len(details.Variants))
	for i, form := range details.Variants {
		id := form.ID()
		if id == "" {
			// Without an id the form cannot be addressed; skip its other checks.
			errs.Add(models.FieldPath(StageDetails, strconv.Itoa(i), models.FormFieldID), models.NewAppError(
				models.ErrID("form_id"), nil,
			))
			continue
		}
		if seen[id] {
			errs.Add(models.FieldPath(StageDetails, id, models.FormFieldID), models.NewAppError(
				models.ErrID("form_id_duplicate"),
				map[string]any{"ID": id},
			))
			continue
		}
		seen[id] = true

		validateVariantTitle(errs, id, form, limits)

		for name, val := range form {
			if name == models.FormFieldID || name == models.FormFieldTitle {
				continue
			}
			validateSchemaField(errs, models.FieldPath(StageDetails, id, name), schema, name, val, true)
		}
	}

	return errs
}

// declaredVariantIDs lists the non-empty variant ids the Details section
// declared, in submission order. The Media and Offer stages are driven by
// this list so a declared variant cannot dodge their per-variant checks by
// simply omitting its entry.
func declaredVariantIDs(sub *models.ProductSubmission) []string {
	if sub.Details == nil {
		return nil
	}
	ids := make([]string, 0, len(sub.Details.Variants))
	for _, form := range sub.Details.Variants {
		if id := form.ID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func validateVariantTitle(errs models.ErrorMap, variantID string, form models.VariantForm, limits models.Limits) {
	path := models.FieldPath(StageDetails, variantID, models.FormFieldTitle)
	title, ok := form[models.FormFieldTitle]
	if !ok || title.Kind != models.AttrKindString {
		errs.Add(path, models.NewAppError(models.ErrID("form_title"), nil))
		return
	}
	if n := utf8.RuneCountInString(title.Str); n < limits.VariantTitleMin || n > limits.VariantTitleMax {
		errs.Add(path, models.NewAppError(
			models.ErrID("form_title"),
			map[string]any{"Min": limits.VariantTitleMin, "Max": limits.VariantTitleMax},
		))
	}
}

// validateSchemaField resolves name in the schema and hands the value to the
// attribute dispatcher. inVariant distinguishes the "unknown field" error from
// the "declared but not customizable per variant" one.
func validateSchemaField(errs models.ErrorMap, path string, schema *models.SubcategorySchema, name string, val models.AttrValue, inVariant bool) {
	var def *models.AttributeDef
	if schema != nil {
		def = schema.Attributes[name]
	}
	if def == nil {
		errs.Add(path, models.NewAppError(models.ErrID("field_unknown"), map[string]any{"Field": name}))
		return
	}
	if inVariant && !def.Variant {
		errs.Add(path, models.NewAppError(models.ErrID("field_not_customizable"), map[string]any{"Field": name}))
		return
	}
	validateAttribute(errs, path, def, val)
}
