package gats

import "testing"

func TestCategoryOf(t *testing.T) {
	t.Parallel()

	cases := map[string]Category{
		"main_2024":                         CategoryMain,
		"master_2019-12":                    CategoryMain,
		"release-05-01-25":                  CategoryMain,
		"prerelease-06-00-00":               CategoryMain,
		"data_reprocessing_proc9":           CategoryData,
		"mc_production_mc12":                CategoryMC,
		"analysis_tools_light-2406-ragdoll": CategoryAnalysis,
		"online":                            CategoryOnline,
		"B2BII":                             CategoryOther,
		"":                                  CategoryOther,
		"maintenance":                       CategoryOther, // no underscore, not main_
	}

	for in, want := range cases {
		if got := CategoryOf(in); got != want {
			t.Fatalf("CategoryOf(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	cases := map[Category]string{
		CategoryMain:     "main",
		CategoryData:     "data",
		CategoryMC:       "mc",
		CategoryAnalysis: "analysis",
		CategoryOnline:   "online",
		CategoryOther:    "other",
	}

	for c, want := range cases {
		if got := c.String(); got != want {
			t.Fatalf("Category(%v).String() = %q; want %q", c, got, want)
		}
	}
}

func TestTagLookupsResolveFirst(t *testing.T) {
	t.Parallel()

	c := Default()

	// an unsupported release resolves before the lookup
	if tag, ok := c.AnalysisTag("release-08-02-00"); !ok || tag != "analysis_tools_light-2406-ragdoll" {
		t.Fatalf("AnalysisTag = %q, %v; want the analysis tools GT of the resolved release", tag, ok)
	}

	if tag, ok := c.DataTag("release-08-02-02"); !ok || tag != "data_reprocessing_proc9" {
		t.Fatalf("DataTag = %q, %v", tag, ok)
	}

	if tag, ok := c.MCTag("release-08-02-02"); !ok || tag != "mc_production_mc12" {
		t.Fatalf("MCTag = %q, %v", tag, ok)
	}

	// the recommended light release carries no data GT
	if _, ok := c.DataTag(""); ok {
		t.Fatalf("DataTag(\"\") should have no entry for the recommended light release")
	}
}

func TestPerformanceRecommendationFor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"MC15": "analysis_performance_recommendation_MC15",
		"MC16": "analysis_performance_recommendation_MC16",
		"MC14": "",
	}

	for campaign, want := range cases {
		rec := PerformanceRecommendationFor(campaign)
		if rec.GlobalTag != want {
			t.Fatalf("PerformanceRecommendationFor(%q).GlobalTag = %q; want %q", campaign, rec.GlobalTag, want)
		}

		if rec.Payload != "recommendation_payload" {
			t.Fatalf("payload = %q; want recommendation_payload", rec.Payload)
		}
	}
}
