package input

import (
	"strconv"
	"strings"
)

// ValueKind tells which field of a Value is set.
type ValueKind int

const (
	StringValue ValueKind = iota
	BoolValue
	FloatValue
	ListValue
)

// Value is the answer to one question.
type Value struct {
	kind ValueKind
	str  string
	b    bool
	num  float64
	list []string
}

func NewString(s string) Value { return Value{kind: StringValue, str: s} }

func NewBool(b bool) Value { return Value{kind: BoolValue, b: b} }

func NewFloat(f float64) Value { return Value{kind: FloatValue, num: f} }

func NewList(l []string) Value { return Value{kind: ListValue, list: l} }

// Kind returns which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string answer, if v holds one.
func (v Value) AsString() (string, bool) { return v.str, v.kind == StringValue }

// AsBool returns the boolean answer, if v holds one.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == BoolValue }

// AsFloat returns the numeric answer, if v holds one.
func (v Value) AsFloat() (float64, bool) { return v.num, v.kind == FloatValue }

// AsList returns the list answer, if v holds one.
func (v Value) AsList() ([]string, bool) { return v.list, v.kind == ListValue }

// Interface returns the answer as a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case BoolValue:
		return v.b
	case FloatValue:
		return v.num
	case ListValue:
		return v.list
	default:
		return v.str
	}
}

func (v Value) String() string {
	switch v.kind {
	case BoolValue:
		return strconv.FormatBool(v.b)
	case FloatValue:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ListValue:
		return strings.Join(v.list, ", ")
	default:
		return v.str
	}
}

// MarshalYAML encodes v as its plain value.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}
