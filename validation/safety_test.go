package validation

import (
	"testing"

	"product-service/models"
)

func safetySchema() *models.SubcategorySchema {
	s := testSchema()
	s.Safety = map[string]*models.AttributeDef{
		"warning_label": {Name: "warning_label", Type: models.AttributeSelect, Options: []string{"choking_hazard", "none"}},
		"lead_free":     {Name: "lead_free", Type: models.AttributeBoolean, Required: true},
	}
	return s
}

func TestValidateSafetyMissingForm(t *testing.T) {
	sub := &models.ProductSubmission{}
	errs := ValidateSafety(sub, safetySchema())
	if errs["safety.form"] == nil {
		t.Fatalf("missing safety form must fail, got %v", errs)
	}
}

func TestValidateSafetyAttestation(t *testing.T) {
	cases := []struct {
		name string
		form models.VariantForm
	}{
		{"missing", models.VariantForm{"warning_label": models.StringValue("none")}},
		{"false", models.VariantForm{"attestation": models.BoolValue(false)}},
		{"wrong kind", models.VariantForm{"attestation": models.StringValue("true")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := &models.ProductSubmission{Safety: tc.form}
			errs := ValidateSafety(sub, safetySchema())
			if errs["safety.attestation"] == nil {
				t.Fatalf("expected an attestation error, got %v", errs)
			}
		})
	}
}

func TestValidateSafetyValid(t *testing.T) {
	sub := &models.ProductSubmission{
		Safety: models.VariantForm{
			"attestation":   models.BoolValue(true),
			"warning_label": models.StringValue("none"),
			"lead_free":     models.BoolValue(true),
		},
	}

	errs := ValidateSafety(sub, safetySchema())
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateSafetyUnknownField(t *testing.T) {
	sub := &models.ProductSubmission{
		Safety: models.VariantForm{
			"attestation": models.BoolValue(true),
			"radioactive": models.BoolValue(false),
		},
	}

	errs := ValidateSafety(sub, safetySchema())
	if errs["safety.radioactive"] == nil || errs["safety.radioactive"].ID != "products.field_unknown.error" {
		t.Fatalf("expected field_unknown, got %v", errs)
	}
}

func TestValidateSafetySchemaFieldsDispatch(t *testing.T) {
	sub := &models.ProductSubmission{
		Safety: models.VariantForm{
			"attestation":   models.BoolValue(true),
			"warning_label": models.StringValue("flammable"),
			"lead_free":     models.BoolValue(false),
		},
	}

	errs := ValidateSafety(sub, safetySchema())
	if errs["safety.warning_label"] == nil || errs["safety.warning_label"].ID != "products.field_not_option.error" {
		t.Fatalf("expected field_not_option, got %v", errs)
	}
	if errs["safety.lead_free"] == nil || errs["safety.lead_free"].ID != "products.must_be_checked.error" {
		t.Fatalf("expected must_be_checked, got %v", errs)
	}
}
