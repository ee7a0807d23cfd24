package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// Options is the menu offered by a choice prompt. It is either an
// OptionList, which yields the chosen value, or an OptionMap, which yields
// the key of the chosen entry.
type Options[T any] interface {
	Len() int
	// Label is the text displayed for the option at index.
	Label(index int) string
	// Pick returns the result for the option at index.
	Pick(index int) T

	sealed()
}

// OptionList offers ordered values.
type OptionList[T any] struct {
	values []T
}

func NewOptionList[T any](values ...T) OptionList[T] {
	return OptionList[T]{values: values}
}

func (l OptionList[T]) Len() int {
	return len(l.values)
}

func (l OptionList[T]) Label(index int) string {
	return fmt.Sprint(l.values[index])
}

func (l OptionList[T]) Pick(index int) T {
	return l.values[index]
}

func (OptionList[T]) sealed() {}

// OptionEntry pairs a key with the value shown for it.
type OptionEntry[K comparable, V any] struct {
	Key   K
	Value V
}

// OptionMap offers ordered key/value entries and yields keys.
type OptionMap[K comparable, V any] struct {
	entries []OptionEntry[K, V]
}

func NewOptionMap[K comparable, V any](entries ...OptionEntry[K, V]) OptionMap[K, V] {
	return OptionMap[K, V]{entries: entries}
}

// NewSortedOptionMap orders the entries of m by key.
func NewSortedOptionMap[K cmp.Ordered, V any](m map[K]V) OptionMap[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]OptionEntry[K, V], 0, len(keys))
	for _, k := range keys {
		entries = append(entries, OptionEntry[K, V]{Key: k, Value: m[k]})
	}
	return OptionMap[K, V]{entries: entries}
}

func (m OptionMap[K, V]) Len() int {
	return len(m.entries)
}

func (m OptionMap[K, V]) Label(index int) string {
	return fmt.Sprint(m.entries[index].Value)
}

func (m OptionMap[K, V]) Pick(index int) K {
	return m.entries[index].Key
}

func (OptionMap[K, V]) sealed() {}

// Compile-time interface compliance checks
var (
	_ Options[string] = OptionList[string]{}
	_ Options[string] = OptionMap[string, int]{}
)
