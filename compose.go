package gats

import (
	"fmt"
	"slices"
	"strings"
)

// EventMetadata is the per-input-file event metadata the composer inspects.
// Only the fields relevant for the recommendation are carried.
type EventMetadata struct {
	IsMC           bool
	ExperimentLow  int
	ExperimentHigh int
	Release        string
}

// Recommendation is the composer output: the ordered list of recommended
// global tags, a free-text advisory for the user, and optionally a release
// the user should switch to (empty when the current one is fine).
type Recommendation struct {
	Tags    []string
	Message string
	Release string
}

// Experiment numbers that denote run-independent MC production.
var runIndependentExperiments = map[int]bool{0: true, 1002: true, 1003: true}

// Compose determines the recommended set of global tags for the given
// conditions: the release the user has set up, the global tags of the input
// files (or the default tags when there is no input), the tags the user set
// explicitly, and the event metadata of the input files.
//
// metadata semantics: nil means events are generated from scratch; an empty
// non-nil slice marks a legacy-format input carrying no metadata at all and
// short-circuits to the fixed B2BII tag; otherwise the first record decides
// whether the input is run-independent MC.
//
// userTags is accepted for call-site compatibility: tags the user already
// set explicitly never change the recommendation.
//
// Compose never fails. A missing table entry degrades to a WARNING line in
// the message and an unrecognized release resolves to the newest supported
// one.
func (c *Catalog) Compose(release string, baseTags, userTags []string, metadata []EventMetadata) Recommendation {
	_ = userTags

	// 1) gather what the decision needs: existing tags by category and
	//    whether the input is run-independent MC
	var mainTags []string
	haveMC := false
	for _, tag := range baseTags {
		switch CategoryOf(tag) {
		case CategoryMain:
			mainTags = append(mainTags, tag)
		case CategoryMC:
			haveMC = true
		}
	}

	runIndependentMC := false
	if len(metadata) > 0 {
		m := metadata[0]
		runIndependentMC = m.ExperimentLow == m.ExperimentHigh &&
			runIndependentExperiments[m.ExperimentLow]
	}

	var rec Recommendation
	var msg strings.Builder

	// 2) recommended release
	resolved := c.Resolve(release)
	if (strings.HasPrefix(release, "release") || strings.HasPrefix(release, "light")) && resolved != release {
		fmt.Fprintf(&msg, "You are using %s, but we recommend to use %s.\n", release, resolved)
		rec.Release = resolved
	}

	// 3) per-category recommendations for the resolved release
	dataTag := c.dataTags[resolved]
	mcTag := c.mcTags[resolved]
	analysisTag := c.analysisTags[resolved]

	if metadata != nil && len(metadata) == 0 {
		// Legacy input without metadata: the fixed converted-data tag only.
		rec.Tags = []string{B2BIITag}
	} else {
		// An existing main GT means we either generate events or read a file
		// produced with it. Keep it as the last GT.
		rec.Tags = append(rec.Tags, mainTags...)

		// Always use the online GT.
		rec.Tags = prepend(rec.Tags, TagOnline)

		// Data GT unless the input is run-independent MC.
		if metadata == nil || !runIndependentMC {
			if dataTag != "" {
				rec.Tags = prepend(rec.Tags, dataTag)
			} else {
				msg.WriteString("WARNING: There is no recommended data global tag.")
			}
		}

		// MC GT when generating events or when the input was produced with one.
		if metadata == nil || haveMC {
			if mcTag != "" {
				rec.Tags = prepend(rec.Tags, mcTag)
			} else {
				msg.WriteString("WARNING: There is no recommended mc global tag.")
			}
		}

		// The analysis GT always goes first.
		if analysisTag != "" {
			rec.Tags = prepend(rec.Tags, analysisTag)
		} else {
			msg.WriteString("WARNING: There is no recommended analysis global tag.")
		}
	}

	// 4) tell the user when the recommendation changes the tags
	if !slices.Equal(rec.Tags, baseTags) {
		fmt.Fprintf(&msg, "The recommended tags differ from the base tags: %s\n", strings.Join(baseTags, " "))
		msg.WriteString("Use the default conditions configuration if you want to take the base tags.\n")
	}

	rec.Message = msg.String()

	return rec
}

// RecommendedTags is a convenience wrapper over Compose for callers that
// only know whether they produce run-dependent MC (mc=true) or process
// data. inputTags are the global tags of the input files, if any.
func (c *Catalog) RecommendedTags(release string, mc bool, inputTags []string) []string {
	var metadata []EventMetadata
	if !mc {
		// A run-dependent placeholder record: experiment numbers outside the
		// run-independent sentinel set keep the data GT in the output.
		metadata = []EventMetadata{{ExperimentLow: -1, ExperimentHigh: -1}}
	}

	return c.Compose(release, inputTags, nil, metadata).Tags
}

// Compose composes against the default catalog. See Catalog.Compose.
func Compose(release string, baseTags, userTags []string, metadata []EventMetadata) Recommendation {
	return defaultCatalog.Compose(release, baseTags, userTags, metadata)
}

// RecommendedTags wraps Compose over the default catalog.
func RecommendedTags(release string, mc bool, inputTags []string) []string {
	return defaultCatalog.RecommendedTags(release, mc, inputTags)
}
