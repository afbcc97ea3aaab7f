package css

import (
	"strconv"
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	// handles "0"
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Pixels makes a px dimension value.
func Pixels(n float64) Value {
	s := strconv.FormatFloat(n, 'f', -1, 64) + "px"
	return Value{Raw: s, Value: n, Unit: "px"}
}

// Declaration is a single "property: value" pair of an inline style.
type Declaration struct {
	Property string // lowercased name, custom properties keep their "--" prefix
	Value    Value
	Custom   bool
}

// Declarations is an inline style in source order. Duplicates are kept, the
// last one wins when looking up.
type Declarations []Declaration

// Get returns value of the last declaration of the property.
func (d Declarations) Get(property string) (Value, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if strings.EqualFold(d[i].Property, property) {
			return d[i].Value, true
		}
	}
	return Value{}, false
}

// First returns value of the first declaration of the property.
func (d Declarations) First(property string) (Value, bool) {
	for _, decl := range d {
		if strings.EqualFold(decl.Property, property) {
			return decl.Value, true
		}
	}
	return Value{}, false
}

// Keyword returns lowercased keyword (or raw text for multi-token values) of
// the property, empty when absent.
func (d Declarations) Keyword(property string) string {
	v, ok := d.Get(property)
	if !ok {
		return ""
	}
	if v.Keyword != "" {
		return strings.ToLower(v.Keyword)
	}
	return strings.ToLower(v.Raw)
}

// String serializes declarations back into inline style text.
func (d Declarations) String() string {
	var sb strings.Builder
	for i, decl := range d {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(decl.Property)
		sb.WriteString(": ")
		sb.WriteString(decl.Value.Raw)
		sb.WriteByte(';')
	}
	return sb.String()
}
