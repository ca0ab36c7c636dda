package core

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Key.
type Kind uint8

const (
	// KindInvalid marks the zero Key, i.e. a missing value.
	KindInvalid Kind = iota
	// KindInt holds a signed 64-bit integer.
	KindInt
	// KindFloat holds a 64-bit float.
	KindFloat
	// KindText holds a string.
	KindText
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Key is an ordered feature value: an integer, a float or a text.
//
// Integers and floats form the numeric family and compare by value, so
// Int(2) and Float(2) are equal. Text keys compare lexically. Keys of
// different families are never stored in the same index.
type Key struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int returns an integer Key.
func Int(v int64) Key { return Key{kind: KindInt, i: v} }

// Float returns a float Key.
func Float(v float64) Key { return Key{kind: KindFloat, f: v} }

// Text returns a text Key.
func Text(v string) Key { return Key{kind: KindText, s: v} }

// KeyOf converts a Go integer, float or string into a Key.
// Any other type, and NaN floats, are rejected.
func KeyOf(v any) (Key, error) {
	switch x := v.(type) {
	case Key:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case float32:
		return floatKey(float64(x))
	case float64:
		return floatKey(x)
	case string:
		return Text(x), nil
	default:
		return Key{}, fmt.Errorf("core: unsupported key type %T", v)
	}
}

func floatKey(f float64) (Key, error) {
	if !Finite(f) {
		return Key{}, fmt.Errorf("core: %g is not an ordered key", f)
	}
	return Float(f), nil
}

// Finite reports whether f can order a numeric index. NaN and the infinities
// cannot, since they leave no finite span to derive transition weights from.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Kind reports the variant of k.
func (k Key) Kind() Kind { return k.kind }

// Valid reports whether k holds a value.
func (k Key) Valid() bool { return k.kind != KindInvalid }

// Numeric reports whether k is an Int or a Float.
func (k Key) Numeric() bool { return k.kind == KindInt || k.kind == KindFloat }

// IsText reports whether k is a Text.
func (k Key) IsText() bool { return k.kind == KindText }

// Float64 returns the numeric value of k. ok is false for text and invalid keys.
func (k Key) Float64() (v float64, ok bool) {
	switch k.kind {
	case KindInt:
		return float64(k.i), true
	case KindFloat:
		return k.f, true
	default:
		return 0, false
	}
}

// AsText returns the string of a text key and "" otherwise.
func (k Key) AsText() string {
	if k.kind == KindText {
		return k.s
	}
	return ""
}

// Value returns the key as int64, float64 or string; nil for the zero Key.
func (k Key) Value() any {
	switch k.kind {
	case KindInt:
		return k.i
	case KindFloat:
		return k.f
	case KindText:
		return k.s
	default:
		return nil
	}
}

// SameFamily reports whether k and o may live in one index.
func (k Key) SameFamily(o Key) bool {
	return k.Valid() && o.Valid() && k.Numeric() == o.Numeric()
}

// Compare orders k against o: -1, 0 or +1.
//
// Invalid keys sort first, then the numeric family, then text.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.rank(), o.rank()); c != 0 {
		return c
	}
	switch {
	case k.kind == KindInt && o.kind == KindInt:
		return cmp.Compare(k.i, o.i)
	case k.Numeric():
		a, _ := k.Float64()
		b, _ := o.Float64()
		return cmp.Compare(a, b)
	case k.kind == KindText:
		return strings.Compare(k.s, o.s)
	default:
		return 0
	}
}

// Equal reports whether k and o are the same valid value.
func (k Key) Equal(o Key) bool {
	return k.Valid() && o.Valid() && k.Compare(o) == 0
}

// Less reports whether k orders before o.
func (k Key) Less(o Key) bool { return k.Compare(o) < 0 }

func (k Key) rank() int {
	switch {
	case k.Numeric():
		return 1
	case k.kind == KindText:
		return 2
	default:
		return 0
	}
}

// String formats the key for logs and error messages.
func (k Key) String() string {
	switch k.kind {
	case KindInt:
		return strconv.FormatInt(k.i, 10)
	case KindFloat:
		return strconv.FormatFloat(k.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(k.s)
	default:
		return "<missing>"
	}
}
