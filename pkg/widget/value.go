package widget

import "strconv"

// ValueKind specifies how a Value is interpreted.
type ValueKind uint8

const (
	ValueString ValueKind = iota // quoted string literal
	ValueInt                     // integer literal
	ValueFloat                   // decimal literal
	ValueBool                    // True / False
	ValueNull                    // None
	ValueSymbol                  // anything else, kept as opaque source text
)

// Value is a typed property or layout-option value. The kind is fixed when
// the source token is scanned and never reinterpreted later.
type Value struct {
	Kind ValueKind
	str  string
	num  float64
	b    bool
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{Kind: ValueString, str: s}
}

// Int returns an integer Value.
func Int(n int) Value {
	return Value{Kind: ValueInt, num: float64(n)}
}

// Float returns a decimal Value.
func Float(f float64) Value {
	return Value{Kind: ValueFloat, num: f}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{Kind: ValueBool, b: b}
}

// Null returns the None Value.
func Null() Value {
	return Value{Kind: ValueNull}
}

// Symbol returns an opaque-text Value for tokens that are not literals
// (identifiers, nested calls, arithmetic, ...).
func Symbol(text string) Value {
	return Value{Kind: ValueSymbol, str: text}
}

// AsString returns the string payload for string and symbol values.
func (v Value) AsString() (string, bool) {
	if v.Kind == ValueString || v.Kind == ValueSymbol {
		return v.str, true
	}
	return "", false
}

// AsInt returns the value as an int for integer and decimal values.
func (v Value) AsInt() (int, bool) {
	if v.Kind == ValueInt || v.Kind == ValueFloat {
		return int(v.num), true
	}
	return 0, false
}

// AsFloat returns the numeric payload.
func (v Value) AsFloat() (float64, bool) {
	if v.Kind == ValueInt || v.Kind == ValueFloat {
		return v.num, true
	}
	return 0, false
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	if v.Kind == ValueBool {
		return v.b, true
	}
	return false, false
}

// IsNull reports whether the value is None.
func (v Value) IsNull() bool {
	return v.Kind == ValueNull
}

// Text renders the value back to display text. Strings and symbols return
// their payload unquoted; numbers use the shortest representation.
func (v Value) Text() string {
	switch v.Kind {
	case ValueString, ValueSymbol:
		return v.str
	case ValueInt:
		return strconv.Itoa(int(v.num))
	case ValueFloat:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueBool:
		if v.b {
			return "True"
		}
		return "False"
	case ValueNull:
		return "None"
	default:
		return ""
	}
}
