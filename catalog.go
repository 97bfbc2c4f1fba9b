package gats

import "fmt"

// Catalog holds the hand-maintained release tables and the recommended
// release. All fields are read-only after construction, so a Catalog is
// safe for concurrent use without coordination.
type Catalog struct {
	recommended   string
	releases      []string // supported full releases, ascending
	lightReleases []string // supported light releases, ascending

	dataTags     map[string]string // release -> recommended data GT
	mcTags       map[string]string // release -> recommended run-dependent MC GT
	analysisTags map[string]string // release -> recommended analysis GT
}

// NewCatalog validates cfg and builds a Catalog.
//
// Both release lists must be non-empty, match their identifier shape, and
// be strictly ascending in version order (the last element is the newest
// and the default recommendation of its kind). The recommended release must
// be set explicitly; nothing is inferred from the table shape.
func NewCatalog(cfg Config) (*Catalog, error) {
	if cfg.RecommendedRelease == "" {
		return nil, fmt.Errorf("recommended release must be set explicitly")
	}

	if err := checkReleases("releases", cfg.Releases, relFull); err != nil {
		return nil, err
	}

	if err := checkReleases("light releases", cfg.LightReleases, relLight); err != nil {
		return nil, err
	}

	return &Catalog{
		recommended:   cfg.RecommendedRelease,
		releases:      append([]string(nil), cfg.Releases...),
		lightReleases: append([]string(nil), cfg.LightReleases...),
		dataTags:      copyTable(cfg.DataTags),
		mcTags:        copyTable(cfg.MCTags),
		analysisTags:  copyTable(cfg.AnalysisTags),
	}, nil
}

// Recommended returns the release recommended when the caller names none.
func (c *Catalog) Recommended() string {
	return c.recommended
}

// Releases returns the supported full releases, newest first.
func (c *Catalog) Releases() []string {
	return reversed(c.releases)
}

// LightReleases returns the supported light releases, newest first.
func (c *Catalog) LightReleases() []string {
	return reversed(c.lightReleases)
}

// latest is the newest supported full release.
func (c *Catalog) latest() string {
	return c.releases[len(c.releases)-1]
}

// latestLight is the newest supported light release.
func (c *Catalog) latestLight() string {
	return c.lightReleases[len(c.lightReleases)-1]
}

// Default returns the catalog with the built-in production tables.
func Default() *Catalog {
	return defaultCatalog
}

// Recommended returns the default catalog's recommended release.
func Recommended() string {
	return defaultCatalog.Recommended()
}

// Releases lists the default catalog's full releases, newest first.
func Releases() []string {
	return defaultCatalog.Releases()
}

// LightReleases lists the default catalog's light releases, newest first.
func LightReleases() []string {
	return defaultCatalog.LightReleases()
}

const defaultAnalysisTag = "analysis_tools_light-2406-ragdoll"

// defaultConfig carries the built-in production tables.
func defaultConfig() Config {
	releases := []string{
		"release-05-01-25", "release-05-02-19",
		"release-06-00-14", "release-06-01-15", "release-06-02-00",
		"release-08-00-10", "release-08-01-10", "release-08-02-02",
	}

	lightReleases := []string{
		"light-2401-ocicat", "light-2403-persian", "light-2405-quaxo",
		"light-2406-ragdoll", "light-2409-toyger",
	}

	latest := releases[len(releases)-1]

	// Every supported release shares the current analysis tools GT.
	// The next major release is already blessed for analysis tools.
	analysis := make(map[string]string, len(releases)+len(lightReleases)+1)
	for _, r := range releases {
		analysis[r] = defaultAnalysisTag
	}
	for _, r := range lightReleases {
		analysis[r] = defaultAnalysisTag
	}
	analysis["release-09-00-00"] = defaultAnalysisTag

	return Config{
		RecommendedRelease: "light-2409-toyger",
		Releases:           releases,
		LightReleases:      lightReleases,
		DataTags:           map[string]string{latest: "data_reprocessing_proc9"},
		MCTags:             map[string]string{latest: "mc_production_mc12"},
		AnalysisTags:       analysis,
	}
}

var defaultCatalog = func() *Catalog {
	c, err := NewCatalog(defaultConfig())
	if err != nil {
		panic(err)
	}

	return c
}()
