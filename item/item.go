// Package item provides ready-made tree items and the factories
// that turn raw values into them.
package item

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.lepak.sg/forest/tree"
	"golang.org/x/exp/constraints"
)

// ErrInvalidConfiguration is returned when a raw value cannot be made into
// an item, either because no factory is configured or because the factory
// does not accept the value.
var ErrInvalidConfiguration = errors.New("invalid item configuration")

var (
	_ tree.Comparable[String]       = String("")
	_ tree.Comparable[Int]          = Int(0)
	_ tree.Comparable[Ordered[int]] = Ordered[int]{}
)

// String is a string item ordered without regard to case.
// "Apple" and "apple" are equal.
type String string

func (s String) CompareTo(o String) int {
	return int(tree.Compare(strings.ToLower(string(s)), strings.ToLower(string(o))))
}

// Int is an integer item.
type Int int

func (i Int) CompareTo(o Int) int {
	return int(tree.Compare(i, o))
}

// Ordered wraps any ordered value into an item.
type Ordered[T constraints.Ordered] struct {
	V T
}

func (o Ordered[T]) CompareTo(p Ordered[T]) int {
	return int(tree.Compare(o.V, p.V))
}

func (o Ordered[T]) String() string {
	return fmt.Sprint(o.V)
}

// Factory makes an item out of a raw value.
type Factory[T any] func(raw any) (T, error)

// From returns raw if it already is a T. Otherwise it calls f.
// Every error returned wraps ErrInvalidConfiguration.
func From[T any](f Factory[T], raw any) (T, error) {
	if t, ok := raw.(T); ok {
		return t, nil
	}

	var zero T
	if f == nil {
		return zero, fmt.Errorf("no factory for %T: %w", raw, ErrInvalidConfiguration)
	}

	t, err := f(raw)
	if err != nil {
		if errors.Is(err, ErrInvalidConfiguration) {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return t, nil
}

// StringFactory accepts strings, byte slices and fmt.Stringers.
func StringFactory(raw any) (String, error) {
	switch v := raw.(type) {
	case string:
		return String(v), nil
	case []byte:
		return String(v), nil
	case fmt.Stringer:
		return String(v.String()), nil
	default:
		return "", fmt.Errorf("cannot make a String from %T: %w", raw, ErrInvalidConfiguration)
	}
}

// IntFactory accepts any integer type and decimal strings.
func IntFactory(raw any) (Int, error) {
	switch v := raw.(type) {
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return Int(v), nil
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint64:
		return Int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("cannot make an Int from %q: %w", v, ErrInvalidConfiguration)
		}
		return Int(n), nil
	default:
		return 0, fmt.Errorf("cannot make an Int from %T: %w", raw, ErrInvalidConfiguration)
	}
}

// OrderedFactory accepts values of exactly type T.
func OrderedFactory[T constraints.Ordered](raw any) (Ordered[T], error) {
	v, ok := raw.(T)
	if !ok {
		return Ordered[T]{}, fmt.Errorf("cannot make an Ordered[%T] from %T: %w",
			v, raw, ErrInvalidConfiguration)
	}
	return Ordered[T]{V: v}, nil
}
