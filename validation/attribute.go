package validation

import (
	"unicode/utf8"

	"product-service/models"
)

// validateAttribute dispatches a submitted value to the checks declared by
// its schema attribute: rule evaluation for Input, membership for Select,
// required-true for Boolean. A runtime type that does not match the declared
// kind is "invalid field data". Unknown attribute types always fail.
//
// Bound violations are keyed one level below the field path (".min", ".max",
// ".gt", ".lt", ".min_length", ".max_length") so each configured bound is
// independently addressable.
func validateAttribute(errs models.ErrorMap, path string, def *models.AttributeDef, val models.AttrValue) {
	switch def.Type {
	case models.AttributeInput:
		validateInputRule(errs, path, def, val)

	case models.AttributeSelect:
		if val.Kind != models.AttrKindString {
			addInvalidFieldData(errs, path, def, val)
			return
		}
		if val.Str == "" {
			if def.Required {
				errs.Add(path, models.NewAppError(models.ErrID("field_required"), map[string]any{"Field": def.Name}))
			}
			return
		}
		if !def.HasOption(val.Str) {
			errs.Add(path, models.NewAppError(
				models.ErrID("field_not_option"),
				map[string]any{"Field": def.Name, "Value": val.Str},
			))
		}

	case models.AttributeBoolean:
		if val.Kind != models.AttrKindBool {
			addInvalidFieldData(errs, path, def, val)
			return
		}
		if def.Required && !val.Bool {
			errs.Add(path, models.NewAppError(models.ErrID("must_be_checked"), map[string]any{"Field": def.Name}))
		}

	default:
		addInvalidFieldData(errs, path, def, val)
	}
}

func validateInputRule(errs models.ErrorMap, path string, def *models.AttributeDef, val models.AttrValue) {
	switch rule := def.Rule.(type) {
	case models.NumericRule:
		if !val.IsNumeric() {
			addInvalidFieldData(errs, path, def, val)
			return
		}
		f := val.Float()
		if rule.Min != nil && f < *rule.Min {
			errs.Add(path+".min", models.NewAppError(models.ErrID("field_min"), map[string]any{"Min": *rule.Min}))
		}
		if rule.Max != nil && f > *rule.Max {
			errs.Add(path+".max", models.NewAppError(models.ErrID("field_max"), map[string]any{"Max": *rule.Max}))
		}
		if rule.Gt != nil && f <= *rule.Gt {
			errs.Add(path+".gt", models.NewAppError(models.ErrID("field_gt"), map[string]any{"Gt": *rule.Gt}))
		}
		if rule.Lt != nil && f >= *rule.Lt {
			errs.Add(path+".lt", models.NewAppError(models.ErrID("field_lt"), map[string]any{"Lt": *rule.Lt}))
		}

	case models.StringRule:
		if val.Kind != models.AttrKindString {
			addInvalidFieldData(errs, path, def, val)
			return
		}
		n := utf8.RuneCountInString(val.Str)
		if rule.MinLength != nil && n < *rule.MinLength {
			errs.Add(path+".min_length", models.NewAppError(models.ErrID("field_min_length"), map[string]any{"Min": *rule.MinLength}))
		}
		if rule.MaxLength != nil && n > *rule.MaxLength {
			errs.Add(path+".max_length", models.NewAppError(models.ErrID("field_max_length"), map[string]any{"Max": *rule.MaxLength}))
		}

	case models.RegexRule:
		if val.Kind != models.AttrKindString {
			addInvalidFieldData(errs, path, def, val)
			return
		}
		// Regex evaluation is not implemented yet. Reported as an explicit
		// error so a schema declaring one can never silently pass.
		errs.Add(path, models.NewAppError(
			models.ErrID("rule_not_supported"),
			map[string]any{"Field": def.Name, "Rule": "regex"},
		))

	case nil:
		// No rule configured; the type check alone applies.
		if val.Kind != models.AttrKindString && !val.IsNumeric() {
			addInvalidFieldData(errs, path, def, val)
		}

	default:
		addInvalidFieldData(errs, path, def, val)
	}
}

func addInvalidFieldData(errs models.ErrorMap, path string, def *models.AttributeDef, val models.AttrValue) {
	errs.Add(path, models.NewAppError(
		models.ErrID("field_invalid"),
		map[string]any{"Field": def.Name, "Kind": val.Kind.String()},
	))
}
