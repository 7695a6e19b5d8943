package session

import "strings"

// Evaluate reports whether the submitted keys equal the correct keys as
// sets. Comparison is case-insensitive and order-independent; there is no
// partial credit. An empty submission is always wrong.
func Evaluate(submitted, correct []string) bool {
	got := keySet(submitted)
	if len(got) == 0 {
		return false
	}
	want := keySet(correct)
	if len(got) != len(want) {
		return false
	}
	for k := range got {
		if !want[k] {
			return false
		}
	}
	return true
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		k = strings.ToUpper(strings.TrimSpace(k))
		if k != "" {
			set[k] = true
		}
	}
	return set
}
