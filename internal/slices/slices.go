package slices

// Map builds a new slice by applying f to each element of src.
func Map[T, U any](src []T, f func(T) U) []U {
	if src == nil {
		return nil
	}
	dst := make([]U, len(src))
	for i, v := range src {
		dst[i] = f(v)
	}
	return dst
}
