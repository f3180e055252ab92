package lox

func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

type Item[T any] struct {
	Index int
	Value T
}

// Indexed pairs every element with its position.
func Indexed[T any](collection []T) []Item[T] {
	result := make([]Item[T], len(collection))

	for i, item := range collection {
		result[i] = Item[T]{Index: i, Value: item}
	}

	return result
}
