package models

// AttributeType is the schema-declared type of a subcategory attribute.
type AttributeType int

const (
	AttributeUnknown AttributeType = iota
	AttributeInput
	AttributeSelect
	AttributeBoolean
)

func (t AttributeType) String() string {
	switch t {
	case AttributeInput:
		return "input"
	case AttributeSelect:
		return "select"
	case AttributeBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// AttributeTypeFromString maps a stored type tag to an AttributeType. Tags
// this revision does not know collapse to AttributeUnknown, which the
// dispatcher rejects rather than silently passing.
func AttributeTypeFromString(s string) AttributeType {
	switch s {
	case "input":
		return AttributeInput
	case "select":
		return AttributeSelect
	case "boolean":
		return AttributeBoolean
	default:
		return AttributeUnknown
	}
}

// AttributeRule is a closed union of validation rule kinds. Adding a kind
// means adding a case to every switch over this interface.
type AttributeRule interface {
	isAttributeRule()
}

// NumericRule bounds a numeric value. Each bound is independently optional
// and independently violable.
type NumericRule struct {
	Min *float64
	Max *float64
	Gt  *float64
	Lt  *float64
}

// StringRule bounds a string's length in runes.
type StringRule struct {
	MinLength *int
	MaxLength *int
}

// RegexRule matches a string against a pattern. Declared in schemas but not
// evaluated yet; the dispatcher reports it as unsupported.
type RegexRule struct {
	Pattern string
}

func (NumericRule) isAttributeRule() {}
func (StringRule) isAttributeRule()  {}
func (RegexRule) isAttributeRule()   {}

// AttributeDef is one named, typed, rule-bearing attribute definition.
type AttributeDef struct {
	Name     string
	Type     AttributeType
	Required bool
	// Variant marks the attribute as customizable per variant. Submitting it
	// inside a variant form when false is an error.
	Variant bool
	Rule    AttributeRule
	// Options is the allowed-value set for Select attributes.
	Options []string
}

// HasOption reports whether v is in the allowed-value set.
func (d *AttributeDef) HasOption(v string) bool {
	for _, o := range d.Options {
		if o == v {
			return true
		}
	}
	return false
}

// SubcategorySchema governs which fields a product of one category/subcategory
// may declare and how each is validated. Attributes covers the Details stage,
// Safety the Safety stage.
type SubcategorySchema struct {
	Category    string
	Subcategory string
	Language    string
	Attributes  map[string]*AttributeDef
	Safety      map[string]*AttributeDef
}
