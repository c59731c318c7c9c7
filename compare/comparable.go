// Package compare provides equality helpers for keys that are looked up by
// linear scan.
package compare

import "strings"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T Comparable[T]](a T, b T) bool {
	return a.Equals(b)
}

// Equal returns the == operator as a function value.
func Equal[T comparable]() func(a, b T) bool {
	return func(a, b T) bool {
		return a == b
	}
}

// ByEquals returns an equality function that delegates to the Equals method
// of the first argument.
//
// Example:
//
//	list := assoc.NewListFunc[UserID, string](compare.ByEquals[UserID]())
func ByEquals[T Comparable[T]]() func(a, b T) bool {
	return Equals[T]
}

// EqualFold reports whether two strings are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
