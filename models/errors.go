package models

import "fmt"

// AppError is a single field-level validation failure: a message identifier
// that the frontend resolves through the translation catalog, plus optional
// named parameters for rendering (e.g. Min/Max bounds).
type AppError struct {
	ID     string         `json:"id"`
	Params map[string]any `json:"params,omitempty"`
}

func NewAppError(id string, params map[string]any) *AppError {
	return &AppError{ID: id, Params: params}
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s %v", e.ID, e.Params)
}

// ErrorMap aggregates one validation stage's failures, keyed by a synthetic
// field path: "<stage>.<field>" or "<stage>.<variant-id>.<field>". A stage
// failed if and only if its map is non-empty.
type ErrorMap map[string]*AppError

func (m ErrorMap) Add(path string, err *AppError) {
	m[path] = err
}

func (m ErrorMap) Empty() bool {
	return len(m) == 0
}

// FieldPath joins path segments into an error map key. Empty segments are
// skipped so the flat (no variant) and per-variant cases share one builder.
func FieldPath(segments ...string) string {
	path := ""
	for _, s := range segments {
		if s == "" {
			continue
		}
		if path == "" {
			path = s
		} else {
			path += "." + s
		}
	}
	return path
}

// ErrID builds a message identifier in the catalog's naming scheme,
// e.g. ErrID("title") == "products.title.error".
func ErrID(name string) string {
	return "products." + name + ".error"
}
