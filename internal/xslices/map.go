package xslices

func Map[T, U any](elements []T, f func(T) U) []U {
	result := make([]U, len(elements))
	for index, element := range elements {
		result[index] = f(element)
	}
	return result
}

// KeyBy indexes elements by key. A later element wins over an earlier one with the same key.
func KeyBy[T any, K comparable](elements []T, key func(T) K) map[K]T {
	result := make(map[K]T, len(elements))
	for _, element := range elements {
		result[key(element)] = element
	}
	return result
}
