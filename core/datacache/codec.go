package datacache

import "fmt"

// Codec converts between a container's member bytes and a typed value.
// Both functions must be pure.
type Codec[T any] struct {
	Create func(entries [][]byte) (T, error)
	Write  func(value T) ([][]byte, error)
}

// PerEntry builds a Codec over a slice with one element per container member.
func PerEntry[E any](create func([]byte) (E, error), write func(E) ([]byte, error)) Codec[[]E] {
	return Codec[[]E]{
		Create: func(entries [][]byte) ([]E, error) {
			out := make([]E, len(entries))
			for i, data := range entries {
				v, err := create(data)
				if err != nil {
					return nil, fmt.Errorf("entry %d: %w", i, err)
				}
				out[i] = v
			}
			return out, nil
		},
		Write: func(values []E) ([][]byte, error) {
			out := make([][]byte, len(values))
			for i, v := range values {
				data, err := write(v)
				if err != nil {
					return nil, fmt.Errorf("entry %d: %w", i, err)
				}
				out[i] = data
			}
			return out, nil
		},
	}
}

// FirstEntry builds a Codec over the first member of a container.
// Containers holding other than exactly one member are rejected.
func FirstEntry[T any](create func([]byte) (T, error), write func(T) ([]byte, error)) Codec[T] {
	return Codec[T]{
		Create: func(entries [][]byte) (T, error) {
			var zero T
			if len(entries) != 1 {
				return zero, fmt.Errorf("expected 1 entry, container has %d", len(entries))
			}
			return create(entries[0])
		},
		Write: func(v T) ([][]byte, error) {
			data, err := write(v)
			if err != nil {
				return nil, err
			}
			return [][]byte{data}, nil
		},
	}
}
