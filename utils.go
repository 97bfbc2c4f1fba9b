package gats

import (
	"fmt"
	"regexp"
	"strings"
)

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// contains reports whether list has an element equal to s.
func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}

	return false
}

// prepend inserts s at the front of list.
func prepend(list []string, s string) []string {
	return append([]string{s}, list...)
}

// reversed returns a copy of list in reverse order.
func reversed(list []string) []string {
	out := make([]string, len(list))
	for i, x := range list {
		out[len(list)-1-i] = x
	}

	return out
}

// checkReleases validates one release table: non-empty, every entry of the
// expected shape, strictly ascending version order.
func checkReleases(name string, list []string, shape *regexp.Regexp) error {
	if len(list) == 0 {
		return fmt.Errorf("%s table is empty", name)
	}

	for i, r := range list {
		if !shape.MatchString(r) {
			return fmt.Errorf("%s entry %q has an unexpected shape", name, r)
		}

		if i > 0 && compareReleases(list[i-1], r) >= 0 {
			return fmt.Errorf("%s not in ascending version order: %q >= %q", name, list[i-1], r)
		}
	}

	return nil
}

// copyTable clones a release->tag table; nil stays nil-safe as an empty map.
func copyTable(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
