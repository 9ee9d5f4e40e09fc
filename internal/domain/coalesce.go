package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// MinIntPtr returns the smaller of two optional ints, treating nil as absent.
func MinIntPtr(a, b *int) *int {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b < *a:
		return b
	default:
		return a
	}
}

// Float64PtrOr returns a when it is set, otherwise b.
func Float64PtrOr(a, b *float64) *float64 {
	if a != nil {
		return a
	}
	return b
}
