package gats

import "strings"

// Well-known fixed global tags.
const (
	// TagOnline is the online GT, part of every composed recommendation.
	TagOnline = "online"

	// B2BIITag marks converted legacy data carrying no event metadata.
	B2BIITag = "B2BII"

	// B2BIIAnalysisTag is the recommended GT for B2BII analyses.
	B2BIIAnalysisTag = "analysis_b2bii"
)

// Category classifies a global tag by its name prefix. The category decides
// where a tag lands in a composed recommendation.
type Category int

const (
	// CategoryOther is anything matching no known prefix.
	CategoryOther Category = iota
	// CategoryMain covers main_ / master_ / release- / prerelease- tags.
	CategoryMain
	// CategoryData covers data_ tags.
	CategoryData
	// CategoryMC covers mc_ tags.
	CategoryMC
	// CategoryAnalysis covers analysis_ tags.
	CategoryAnalysis
	// CategoryOnline is the fixed online GT.
	CategoryOnline
)

// String returns a stable textual representation for Category.
func (c Category) String() string {
	switch c {
	case CategoryMain:
		return "main"
	case CategoryData:
		return "data"
	case CategoryMC:
		return "mc"
	case CategoryAnalysis:
		return "analysis"
	case CategoryOnline:
		return "online"
	default:
		return "other"
	}
}

// CategoryOf classifies a global tag by its name prefix.
func CategoryOf(tag string) Category {
	switch {
	case tag == TagOnline:
		return CategoryOnline

	case strings.HasPrefix(tag, "main_"), strings.HasPrefix(tag, "master_"),
		strings.HasPrefix(tag, "release-"), strings.HasPrefix(tag, "prerelease-"):
		return CategoryMain

	case strings.HasPrefix(tag, "data_"):
		return CategoryData

	case strings.HasPrefix(tag, "mc_"):
		return CategoryMC

	case strings.HasPrefix(tag, "analysis_"):
		return CategoryAnalysis

	default:
		return CategoryOther
	}
}

// DataTag returns the recommended data GT for release, resolving it first.
// ok=false means the table has no entry for the resolved release.
func (c *Catalog) DataTag(release string) (string, bool) {
	tag, ok := c.dataTags[c.Resolve(release)]
	return tag, ok
}

// MCTag returns the recommended run-dependent MC GT for release.
func (c *Catalog) MCTag(release string) (string, bool) {
	tag, ok := c.mcTags[c.Resolve(release)]
	return tag, ok
}

// AnalysisTag returns the recommended analysis tools GT for release.
func (c *Catalog) AnalysisTag(release string) (string, bool) {
	tag, ok := c.analysisTags[c.Resolve(release)]
	return tag, ok
}

// PerformanceRecommendation names the GT and payload carrying the
// performance recommendations of an MC campaign.
type PerformanceRecommendation struct {
	GlobalTag string
	Payload   string
}

// PerformanceRecommendationFor looks up the performance recommendation for
// a campaign. Unknown campaigns yield an empty GlobalTag, never an error.
func PerformanceRecommendationFor(campaign string) PerformanceRecommendation {
	rec := PerformanceRecommendation{Payload: "recommendation_payload"}

	switch campaign {
	case "MC15":
		rec.GlobalTag = "analysis_performance_recommendation_MC15"
	case "MC16":
		rec.GlobalTag = "analysis_performance_recommendation_MC16"
	}

	return rec
}
