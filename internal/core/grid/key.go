// Package grid defines the shared data model for the tabular engine:
// row keys, column definitions, and the sort/filter/group/page state types
// consumed by the pipeline and the stateful managers.
package grid

import "strconv"

// Key identifies a row within the current dataset. Numeric host keys are
// stringified by the key function. Keys must be unique within the dataset;
// behavior under duplicate keys is undefined and is the caller's
// responsibility to avoid.
type Key string

// KeyFunc derives a Key from a row and its position in the host's canonical
// array. A nil KeyFunc falls back to KeyByIndex.
type KeyFunc[T any] func(row T, index int) Key

// KeyByIndex keys rows by their position in the canonical array.
func KeyByIndex[T any]() KeyFunc[T] {
	return func(_ T, index int) Key {
		return KeyInt(index)
	}
}

// KeyInt converts a numeric host key to a Key.
func KeyInt(v int) Key {
	return Key(strconv.Itoa(v))
}
