package validation

import (
	"strconv"
	"unicode/utf8"

	"product-service/models"
)

// ValidateDescription checks the description text bounds, the bullet point
// count and each bullet point's text bounds. Per-bullet errors are keyed by
// the bullet's own id.
func ValidateDescription(desc *models.SubmissionDescription, limits models.Limits) models.ErrorMap {
	errs := models.ErrorMap{}
	if desc == nil {
		desc = &models.SubmissionDescription{}
	}

	if n := utf8.RuneCountInString(desc.Description); n < limits.DescriptionMin || n > limits.DescriptionMax {
		errs.Add(models.FieldPath(StageDescription, "description"), models.NewAppError(
			models.ErrID("description"),
			map[string]any{"Min": limits.DescriptionMin, "Max": limits.DescriptionMax},
		))
	}

	if n := len(desc.BulletPoints); n < limits.BulletPointsMin || n > limits.BulletPointsMax {
		errs.Add(models.FieldPath(StageDescription, "bullet_points"), models.NewAppError(
			models.ErrID("bullet_points"),
			map[string]any{"Min": limits.BulletPointsMin, "Max": limits.BulletPointsMax},
		))
	}

	for i, bp := range desc.BulletPoints {
		if n := utf8.RuneCountInString(bp.Text); n < limits.BulletTextMin || n > limits.BulletTextMax {
			// Bullets without an id are keyed by index so they cannot
			// collapse onto one map entry.
			key := bp.ID
			if key == "" {
				key = strconv.Itoa(i)
			}
			errs.Add(models.FieldPath(StageDescription, key), models.NewAppError(
				models.ErrID("bullet_point"),
				map[string]any{"Min": limits.BulletTextMin, "Max": limits.BulletTextMax},
			))
		}
	}

	return errs
}
