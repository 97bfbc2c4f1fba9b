package gats

import "strings"

// preSlice are the fixed offsets used to cut a pre-release candidate back to
// its final release name: "prerelease-06-00-00a" -> "release-06-00-00".
const (
	preSliceStart = 3
	preSliceEnd   = 19
)

// Resolve maps a free-form release identifier to the supported release that
// best matches it. An empty release returns the recommended release.
//
// Rules, in order:
//   - a "pre" prefix is stripped, so pre-release candidates resolve against
//     the same tables as their final counterparts
//   - supported full releases, and full releases newer than the newest
//     supported one, are returned unchanged
//   - any other full release rounds UP to the next supported release
//   - a supported light release returns itself; any other light identifier
//     falls back to the newest supported light release
//   - anything else falls back to the newest supported full release
//
// Resolve never fails and is idempotent.
func (c *Catalog) Resolve(release string) string {
	if release == "" {
		return c.recommended
	}

	if strings.HasPrefix(release, "pre") {
		release = release[preSliceStart:min(preSliceEnd, len(release))]
	}

	if release == "release-" {
		return c.latest()
	}

	if strings.HasPrefix(release, "release-") {
		if contains(c.releases, release) {
			return release
		}

		v := parseVersion(release)

		// a release newer than the newest supported one is fine to use
		if v.compare(parseVersion(c.latest())) >= 0 {
			return release
		}

		// round up to the next supported release
		for _, supported := range c.releases {
			if v.compare(parseVersion(supported)) < 0 {
				return supported
			}
		}
	}

	if strings.HasPrefix(release, "light") {
		if contains(c.lightReleases, release) {
			return release
		}

		return c.latestLight()
	}

	return c.latest()
}

// TrainingRelease returns the release recommended for training purposes,
// the newest supported light release.
func (c *Catalog) TrainingRelease() string {
	return c.Resolve("light")
}

// Resolve resolves release against the default catalog. See Catalog.Resolve.
func Resolve(release string) string {
	return defaultCatalog.Resolve(release)
}

// TrainingRelease returns the default catalog's training release.
func TrainingRelease() string {
	return defaultCatalog.TrainingRelease()
}
