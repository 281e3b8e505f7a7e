// Package parser turns a loosely structured figure description into the
// typed models consumed by rendering backends.
//
// A description is plain decoded data: map[string]any objects, []any
// sequences, strings, numbers and nils, i.e. what encoding/json produces.
// Objects standing for one variant of a closed family carry their tag
// under the "type" key. A field is present iff its key exists and its
// value is not nil; an explicit nil actively disables a default, while an
// absent key leaves it untouched.
package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/plotive/plotive-go/pkg/plotive/diag"
)

const tagKey = "type"

// attrNotNil returns the named field only when it is present and not nil.
func attrNotNil(obj map[string]any, name string) (any, bool) {
	v, ok := obj[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// requiredAttr returns the named field, failing when it is absent or nil.
func requiredAttr(obj map[string]any, slot, name string) (any, error) {
	v, ok := attrNotNil(obj, name)
	if !ok {
		return nil, diag.NewTypeError(slot, fmt.Sprintf("object without %q", name), fmt.Sprintf("field %q to be set", name))
	}
	return v, nil
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// typeTag reads the variant tag of an object.
func typeTag(slot string, v any) (string, error) {
	obj, ok := asObject(v)
	if !ok {
		return "", diag.NewTypeError(slot, describe(v), "a tagged object")
	}
	tag, ok := obj[tagKey].(string)
	if !ok || tag == "" {
		return "", diag.NewTypeError(slot, describe(v), `an object with a string "type" tag`)
	}
	return tag, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asInt64 accepts integer-shaped numbers: Go integer kinds and
// json.Number literals without a fraction or exponent.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > 1<<62 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > 1<<62 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		if strings.ContainsAny(n.String(), ".eE") {
			return 0, false
		}
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// asFloat64 accepts any numeric shape.
func asFloat64(v any) (float64, bool) {
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// asFloatShaped accepts only float-shaped numbers. Used where an integer
// in the same slot means something else, like the color alpha channel.
func asFloatShaped(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		if !strings.ContainsAny(n.String(), ".eE") {
			return 0, false
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func asFloat32(v any) (float32, bool) {
	f, ok := asFloat64(v)
	return float32(f), ok
}

func asByte(v any) (uint8, bool) {
	i, ok := asInt64(v)
	if !ok || i < 0 || i > 255 {
		return 0, false
	}
	return uint8(i), true
}

func asUint32(v any) (uint32, bool) {
	i, ok := asInt64(v)
	if !ok || i < 0 || i > 1<<32-1 {
		return 0, false
	}
	return uint32(i), true
}

func asInt(v any) (int, bool) {
	i, ok := asInt64(v)
	if !ok {
		return 0, false
	}
	return int(i), true
}

// asSeq normalizes the sequence shapes a description may carry.
func asSeq(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []float64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []float32:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []int:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []int64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	}
	return nil, false
}

// floatValues extracts a homogeneous numeric sequence.
func floatValues(v any) ([]float64, bool) {
	if vals, ok := v.([]float64); ok {
		out := make([]float64, len(vals))
		copy(out, vals)
		return out, true
	}
	seq, ok := asSeq(v)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(seq))
	for i, e := range seq {
		f, ok := asFloat64(e)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// stringValues extracts a homogeneous text sequence.
func stringValues(v any) ([]string, bool) {
	if vals, ok := v.([]string); ok {
		out := make([]string, len(vals))
		copy(out, vals)
		return out, true
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, len(seq))
	for i, e := range seq {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// describe names a foreign value's shape for error messages.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", t)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		if tag, ok := t[tagKey].(string); ok {
			return fmt.Sprintf("object tagged %q", tag)
		}
		return "an untagged object"
	}
	if seq, ok := asSeq(v); ok {
		return fmt.Sprintf("a sequence of %d elements", len(seq))
	}
	if f, ok := asFloat64(v); ok {
		return fmt.Sprintf("number %v", f)
	}
	return fmt.Sprintf("%T", v)
}
