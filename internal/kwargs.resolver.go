package internal

// IndexOf returns the position of the first occurrence of name in names.
// ok is false when the name is absent, which is distinct from index 0.
func IndexOf(names []string, name string) (index int, ok bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// IsIndex reports whether field is a non-empty run of decimal digits
func IsIndex(field string) bool {
	if field == "" {
		return false
	}
	for i := 0; i < len(field); i++ {
		if !isDigit(field[i]) {
			return false
		}
	}
	return true
}
