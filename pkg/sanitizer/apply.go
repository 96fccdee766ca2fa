package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable pipeline out of transforms.
// Prefer it over repeated Apply calls when the same chain runs many times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
