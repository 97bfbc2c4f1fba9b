package gats

import (
	"reflect"
	"testing"
)

func TestParseVersion_Fields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []segment
	}{
		{"release-06-00-14", []segment{
			{num: 6, isNum: true}, {num: 0, isNum: true}, {num: 14, isNum: true},
		}},
		{"light-2409-toyger", []segment{
			{num: 2409, isNum: true}, {str: "toyger"},
		}},
		// suffixed patch field splits into a digit run and a letter run
		{"release-06-00-00a", []segment{
			{num: 6, isNum: true}, {num: 0, isNum: true}, {num: 0, isNum: true}, {str: "a"},
		}},
		// no version fields at all
		{"release", nil},
		{"", nil},
	}

	for _, tc := range cases {
		got := parseVersion(tc.in).segs
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("parseVersion(%q) = %#v; want %#v", tc.in, got, tc.want)
		}
	}
}

func TestCompareReleases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		// numeric triples, leading zeros carry no weight
		{"release-05-01-25", "release-05-02-19", -1},
		{"release-06-00-14", "release-06-00-14", 0},
		{"release-08-02-02", "release-08-01-10", 1},
		{"release-09-00-00", "release-08-02-02", 1},

		// second field dominates the third
		{"release-06-01-15", "release-06-02-00", -1},

		// light releases order by date code, then codename
		{"light-2406-ragdoll", "light-2409-toyger", -1},
		{"light-2409-toyger", "light-2409-toyger", 0},
		{"light-2401-ocicat", "light-2401-persian", -1},

		// a non-numeric suffix orders after the plain version
		{"release-06-00-00", "release-06-00-00a", -1},

		// a numeric field orders before a string field in the same position
		{"light-2409-11", "light-2409-toyger", -1},

		// shorter prefix is older
		{"release-06-00", "release-06-00-14", -1},
	}

	for _, tc := range cases {
		if got := compareReleases(tc.a, tc.b); got != tc.want {
			t.Fatalf("compareReleases(%q, %q) = %d; want %d", tc.a, tc.b, got, tc.want)
		}

		if got := compareReleases(tc.b, tc.a); got != -tc.want {
			t.Fatalf("compareReleases(%q, %q) = %d; want %d", tc.b, tc.a, got, -tc.want)
		}
	}
}

func TestVersionSemverFastPath(t *testing.T) {
	t.Parallel()

	// Numeric triples take the semver path.
	if _, ok := parseVersion("release-05-01-25").semver(); !ok {
		t.Fatalf("numeric triple must map onto semver")
	}

	// Anything else stays on the loose path.
	for _, in := range []string{"light-2409-toyger", "release-06-00", "release-06-00-00a"} {
		if _, ok := parseVersion(in).semver(); ok {
			t.Fatalf("%q must not map onto semver", in)
		}
	}
}

func TestReleaseShapes(t *testing.T) {
	t.Parallel()

	full := map[string]bool{
		"release-05-01-25":    true,
		"release-09-00-00":    true,
		"release-":            false,
		"light-2409-toyger":   false,
		"prerelease-06-00-00": false,
	}
	for in, want := range full {
		if got := relFull.MatchString(in); got != want {
			t.Fatalf("relFull(%q) = %v; want %v", in, got, want)
		}
	}

	light := map[string]bool{
		"light-2409-toyger": true,
		"light-2401-ocicat": true,
		"light-toyger":      false,
		"release-05-01-25":  false,
	}
	for in, want := range light {
		if got := relLight.MatchString(in); got != want {
			t.Fatalf("relLight(%q) = %v; want %v", in, got, want)
		}
	}
}
