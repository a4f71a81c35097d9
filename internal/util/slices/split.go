package slices

import "github.com/zeebo/errs"

// Split deals v into n round-robin groups.
func Split[T any](n int, v []T) ([][]T, error) {
	if len(v) == 0 {
		return [][]T{}, nil
	}

	if n <= 0 {
		return nil, errs.New("n:%d must be greater than zero", n)
	}

	div := make(map[int][]T, n)
	for i, val := range v {
		idx := i % n
		l := div[idx]
		l = append(l, val)
		div[idx] = l
	}

	var b [][]T
	for _, v := range div {
		b = append(b, v)
	}

	return b, nil
}

// Dedup returns v without duplicates, preserving first-seen order.
func Dedup[T comparable](v []T) []T {
	seen := make(map[T]struct{}, len(v))

	out := make([]T, 0, len(v))
	for _, val := range v {
		if _, ok := seen[val]; ok {
			continue
		}
		seen[val] = struct{}{}
		out = append(out, val)
	}

	return out
}
