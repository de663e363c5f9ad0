// Package mapper holds small generic helpers for converting between layers.
package mapper

// MapSlice applies mapFunc to each element. The result is never nil, so an
// empty input encodes as [] rather than null.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithError applies a mapper function that may return an error to each element.
// Returns early if any mapping fails.
func MapSliceWithError[T any, R any](items []T, mapFunc func(T) (R, error)) ([]R, error) {
	result := make([]R, 0, len(items))
	for _, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}

// MapValues applies mapFunc to every slice in a map, keeping the keys.
func MapValues[K comparable, T any, R any](groups map[K][]T, mapFunc func(T) R) map[K][]R {
	result := make(map[K][]R, len(groups))
	for key, items := range groups {
		result[key] = MapSlice(items, mapFunc)
	}
	return result
}

// MapValuesWithError is MapValues for mapper functions that can fail.
func MapValuesWithError[K comparable, T any, R any](groups map[K][]T, mapFunc func(T) (R, error)) (map[K][]R, error) {
	result := make(map[K][]R, len(groups))
	for key, items := range groups {
		mapped, err := MapSliceWithError(items, mapFunc)
		if err != nil {
			return nil, err
		}
		result[key] = mapped
	}
	return result, nil
}
