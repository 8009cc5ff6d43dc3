package validation

import "product-service/models"

// ValidateSafety checks the safety-compliance form: it must be present, the
// attestation checkbox must be set, and every other field is validated against
// the subcategory's safety schema through the attribute dispatcher.
func ValidateSafety(sub *models.ProductSubmission, schema *models.SubcategorySchema) models.ErrorMap {
	errs := models.ErrorMap{}

	form := sub.Safety
	if len(form) == 0 {
		errs.Add(models.FieldPath(StageSafety, "form"), models.NewAppError(models.ErrID("safety_form"), nil))
		return errs
	}

	attested, ok := form[models.SafetyAttestationField]
	if !ok || attested.Kind != models.AttrKindBool || !attested.Bool {
		errs.Add(models.FieldPath(StageSafety, models.SafetyAttestationField), models.NewAppError(
			models.ErrID("attestation"), nil,
		))
	}

	for name, val := range form {
		if name == models.SafetyAttestationField {
			continue
		}
		path := models.FieldPath(StageSafety, name)

		var def *models.AttributeDef
		if schema != nil {
			def = schema.Safety[name]
		}
		if def == nil {
			errs.Add(path, models.NewAppError(models.ErrID("field_unknown"), map[string]any{"Field": name}))
			continue
		}
		validateAttribute(errs, path, def, val)
	}

	return errs
}
