package frontmatter

import (
	"gopkg.in/yaml.v3"
)

// Kind identifies the resolved type of a metadata value.
type Kind int

const (
	// KindString is a plain or quoted string scalar.
	KindString Kind = iota + 1
	// KindBool is a boolean literal (true/false).
	KindBool
	// KindNumber is an integer or float literal.
	KindNumber
	// KindNull is an explicit null (null, ~, or an empty value).
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}

// Value is a scalar metadata value. It is a closed variant over string,
// bool, number, and null; String is always safe to call regardless of kind.
type Value struct {
	kind Kind
	text string
	b    bool
	n    float64
}

// resolveValue interprets the raw trimmed text of a value using YAML scalar
// rules. Anything that is not a recognized scalar literal stays a string.
func resolveValue(raw string) Value {
	if raw == "" {
		return Value{kind: KindNull}
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return Value{kind: KindString, text: raw}
	}
	if len(node.Content) != 1 || node.Content[0].Kind != yaml.ScalarNode {
		// Values that would parse as YAML collections are kept verbatim;
		// the frontmatter grammar only admits scalars.
		return Value{kind: KindString, text: raw}
	}

	scalar := node.Content[0]
	switch scalar.Tag {
	case "!!bool":
		var b bool
		if err := scalar.Decode(&b); err == nil {
			return Value{kind: KindBool, text: scalar.Value, b: b}
		}
	case "!!int", "!!float":
		var n float64
		if err := scalar.Decode(&n); err == nil {
			return Value{kind: KindNumber, text: scalar.Value, n: n}
		}
	case "!!null":
		return Value{kind: KindNull}
	}

	return Value{kind: KindString, text: scalar.Value}
}

// Kind returns the resolved kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Valid reports whether the value was produced by the parser. The zero Value
// is invalid and indicates a mapping that violates the parser contract.
func (v Value) Valid() bool {
	switch v.kind {
	case KindString, KindBool, KindNumber, KindNull:
		return true
	}
	return false
}

// String returns the textual form of the value. This is the safe accessor:
// it never fails, and for quoted strings it returns the unquoted content.
// Null values yield the empty string.
func (v Value) String() string {
	return v.text
}

// Bool returns the boolean value and whether the value is a bool.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Number returns the numeric value and whether the value is a number.
func (v Value) Number() (float64, bool) {
	return v.n, v.kind == KindNumber
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}
