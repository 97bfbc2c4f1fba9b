package gats

import (
	"regexp"
	"strconv"
	"strings"

	sv "github.com/woozymasta/semver"
)

var (
	// Full release: release-XX-YY-ZZ, dot-decomposable into a numeric triple.
	relFull = regexp.MustCompile(`^release-\d+-\d+-\d+$`)

	// Light release: light-YYMM-codename.
	relLight = regexp.MustCompile(`^light-\d{4}-[a-z0-9]+$`)
)

// segment is one field of a loosely parsed version: either a number or a
// bare string. Numbers compare numerically; a string orders after any
// number in the same position.
type segment struct {
	num   int
	str   string
	isNum bool
}

// version is the loosely parsed dotted version of a release identifier,
// obtained by dropping the leading keyword and splitting the remainder.
type version struct {
	segs []segment
}

// parseVersion extracts the version fields of a release identifier:
//
//	"release-06-00-14"  -> 6.0.14
//	"light-2409-toyger" -> 2409.toyger
//
// The leading keyword is discarded. Each remaining field is split into
// digit runs and non-digit runs ("00a" -> 0.a), so suffixed patch fields
// still order after their plain counterparts.
func parseVersion(release string) version {
	fields := strings.Split(release, "-")
	if len(fields) < 2 {
		return version{}
	}

	var segs []segment
	for _, f := range fields[1:] {
		segs = append(segs, splitRuns(f)...)
	}

	return version{segs: segs}
}

// splitRuns breaks a single field into alternating digit and non-digit runs.
func splitRuns(s string) []segment {
	out := make([]segment, 0, 2)

	start := 0
	for start < len(s) {
		end := start
		digits := isDigit(s[start])
		for end < len(s) && isDigit(s[end]) == digits {
			end++
		}

		if digits {
			n, _ := strconv.Atoi(s[start:end])
			out = append(out, segment{num: n, isNum: true})
		} else {
			out = append(out, segment{str: s[start:end]})
		}
		start = end
	}

	return out
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// compare orders v against w: -1, 0, or +1.
//
// Numeric triples (every full release) map onto SemVer precedence and are
// compared through the semver package; everything else takes the loose
// segment-wise path.
func (v version) compare(w version) int {
	if a, ok := v.semver(); ok {
		if b, ok := w.semver(); ok {
			return a.Compare(b)
		}
	}

	for i := 0; i < len(v.segs) && i < len(w.segs); i++ {
		if c := compareSegments(v.segs[i], w.segs[i]); c != 0 {
			return c
		}
	}

	// common prefix equal: the shorter version is older
	switch {
	case len(v.segs) < len(w.segs):
		return -1
	case len(v.segs) > len(w.segs):
		return 1
	default:
		return 0
	}
}

// compareSegments orders two fields: numbers numerically, strings
// lexicographically, and any number before any string.
func compareSegments(a, b segment) int {
	switch {
	case a.isNum && b.isNum:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}

	case a.isNum: // number sorts before string
		return -1

	case b.isNum:
		return 1

	default:
		return strings.Compare(a.str, b.str)
	}
}

// semver converts a pure numeric triple into a parsed semver value.
// Versions with string fields or a different arity report ok=false and
// take the loose path instead. Canonical output is never needed here.
func (v version) semver() (sv.Semver, bool) {
	if len(v.segs) != 3 {
		return sv.Semver{}, false
	}

	for _, s := range v.segs {
		if !s.isNum {
			return sv.Semver{}, false
		}
	}

	return sv.Parse(strconv.Itoa(v.segs[0].num) + "." +
		strconv.Itoa(v.segs[1].num) + "." + strconv.Itoa(v.segs[2].num))
}

// compareReleases orders two release identifiers by their version fields.
func compareReleases(a, b string) int {
	return parseVersion(a).compare(parseVersion(b))
}
