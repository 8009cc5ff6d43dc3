package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AttrKind identifies the runtime type of a dynamically-typed attribute value.
type AttrKind int

const (
	AttrKindInvalid AttrKind = iota
	AttrKindString
	AttrKindDouble
	AttrKindInt
	AttrKindBool
)

func (k AttrKind) String() string {
	switch k {
	case AttrKindString:
		return "string"
	case AttrKindDouble:
		return "double"
	case AttrKindInt:
		return "int"
	case AttrKindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// AttrValue is a dynamically-typed attribute value submitted by the client.
// The set of kinds is closed: string, double, integer, boolean.
type AttrValue struct {
	Kind AttrKind
	Str  string
	Num  float64
	Int  int64
	Bool bool
}

func StringValue(s string) AttrValue  { return AttrValue{Kind: AttrKindString, Str: s} }
func DoubleValue(f float64) AttrValue { return AttrValue{Kind: AttrKindDouble, Num: f} }
func IntValue(i int64) AttrValue      { return AttrValue{Kind: AttrKindInt, Int: i} }
func BoolValue(b bool) AttrValue      { return AttrValue{Kind: AttrKindBool, Bool: b} }

// IsNumeric reports whether the value can be evaluated against numeric rules.
func (v AttrValue) IsNumeric() bool {
	return v.Kind == AttrKindDouble || v.Kind == AttrKindInt
}

// Float returns the numeric value widened to float64. Zero for non-numerics.
func (v AttrValue) Float() float64 {
	switch v.Kind {
	case AttrKindDouble:
		return v.Num
	case AttrKindInt:
		return float64(v.Int)
	default:
		return 0
	}
}

func (v AttrValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AttrKindString:
		return json.Marshal(v.Str)
	case AttrKindDouble:
		return json.Marshal(v.Num)
	case AttrKindInt:
		return json.Marshal(v.Int)
	case AttrKindBool:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}

func (v *AttrValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case string:
		*v = StringValue(val)
	case bool:
		*v = BoolValue(val)
	case json.Number:
		// Integral literals stay integers; anything with a fraction or
		// exponent becomes a double.
		if i, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
			*v = IntValue(i)
			return nil
		}
		f, err := val.Float64()
		if err != nil {
			return err
		}
		*v = DoubleValue(f)
	case nil:
		*v = AttrValue{}
	default:
		return fmt.Errorf("unsupported attribute value type %T", raw)
	}
	return nil
}

// VariantForm is one variant's submitted fields: reserved "id" and "title"
// entries plus schema-defined attributes.
type VariantForm map[string]AttrValue

// Reserved variant form field names.
const (
	FormFieldID    = "id"
	FormFieldTitle = "title"
)

// ID returns the client-chosen transient variant key, empty when missing or
// not a string.
func (f VariantForm) ID() string {
	v, ok := f[FormFieldID]
	if !ok || v.Kind != AttrKindString {
		return ""
	}
	return v.Str
}
