// Package strx holds small helpers for config strings.
package strx

// Coalesce returns the first non-empty value, or "" when all are empty.
// Config layers are passed most specific first.
func Coalesce(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
