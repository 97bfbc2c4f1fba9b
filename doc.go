/*
Package gats (Global Analysis Tag Selector) resolves software release
identifiers against the supported-release tables and composes the
recommended set of conditions global tags for a processing job.

The core is pure: Resolve and Compose are plain functions over the
hand-maintained Catalog, never fail, and are safe to call concurrently.
Typical flow:

 1. Resolve the release the user has set up.
 2. Call Compose with the input-file tags and event metadata.
 3. Apply the recommended tags, show the advisory message.

Resolution notes:
  - supported releases are fixed points; full releases newer than the
    newest supported one pass through unchanged
  - older full releases round up to the next supported release
  - unknown light releases fall back to the newest supported light release
  - anything unrecognized falls back to the newest supported full release
  - a "pre" prefix is stripped first, so pre-release candidates resolve
    against the same tables as their final counterparts

Usage example:

	rec := gats.Compose("release-06-00-03",
		[]string{"main_2024", "data_reprocessing_proc9"}, nil,
		[]gats.EventMetadata{{ExperimentLow: 12, ExperimentHigh: 12}})

	fmt.Println(rec.Tags)    // recommended tags, analysis GT first
	fmt.Println(rec.Message) // advisory text, may suggest another release

Around the core the package maps administrative tasks to upload tags and
ticket-tracker routes (UploadTag, TicketRoute, OpenTicket), writes jupyter
kernel launcher specs for every supported release (WriteKernels), and
renders an HTML index of the release tables (RenderIndex, WriteIndex).
Integrators can replace the built-in tables with NewCatalog or a YAML
override file (LoadConfig); the recommended release is always set
explicitly, never inferred.
*/
package gats
