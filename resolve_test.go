package gats

import "testing"

func TestResolve_SupportedFixedPoint(t *testing.T) {
	t.Parallel()

	c := Default()
	for _, release := range append(c.Releases(), c.LightReleases()...) {
		if got := c.Resolve(release); got != release {
			t.Fatalf("Resolve(%q) = %q; want the release itself", release, got)
		}
	}
}

func TestResolve_Empty(t *testing.T) {
	t.Parallel()

	if got := Resolve(""); got != Recommended() {
		t.Fatalf("Resolve(\"\") = %q; want %q", got, Recommended())
	}
}

func TestResolve_RoundUp(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		// older than everything -> the first supported release
		"release-01-00-00": "release-05-01-25",
		"release-05-01-00": "release-05-01-25",

		// between supported releases -> the next one up
		"release-05-01-26": "release-05-02-19",
		"release-06-00-00": "release-06-00-14",
		"release-07-00-00": "release-08-00-10",
		"release-08-02-00": "release-08-02-02",
	}

	for in, want := range cases {
		if got := Resolve(in); got != want {
			t.Fatalf("Resolve(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestResolve_NewerPassThrough(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"release-08-02-03", "release-09-00-00", "release-10-00-00"} {
		if got := Resolve(in); got != in {
			t.Fatalf("Resolve(%q) = %q; want it unchanged", in, got)
		}
	}
}

func TestResolve_BareReleasePrefix(t *testing.T) {
	t.Parallel()

	if got := Resolve("release-"); got != "release-08-02-02" {
		t.Fatalf("Resolve(\"release-\") = %q; want the newest full release", got)
	}
}

func TestResolve_PreCandidates(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		// candidate of a supported release -> the release itself
		"prerelease-08-02-02": "release-08-02-02",

		// candidate of an unsupported old version -> rounds up
		"prerelease-06-00-00": "release-06-00-14",

		// candidate newer than the newest supported -> passes through
		"prerelease-09-00-00": "release-09-00-00",

		// candidate suffixes past the fixed slice are cut off
		"prerelease-06-00-00a": "release-06-00-14",

		// a bare "pre" degrades to the newest full release
		"pre": "release-08-02-02",
	}

	for in, want := range cases {
		if got := Resolve(in); got != want {
			t.Fatalf("Resolve(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestResolve_Light(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"light-2401-ocicat":      "light-2401-ocicat",
		"light-2409-toyger":      "light-2409-toyger",
		"light-2312-nonexistent": "light-2409-toyger",
		"light":                  "light-2409-toyger",
	}

	for in, want := range cases {
		if got := Resolve(in); got != want {
			t.Fatalf("Resolve(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestResolve_UnrecognizedFallsBack(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"garbage", "head", "v1.2.3"} {
		if got := Resolve(in); got != "release-08-02-02" {
			t.Fatalf("Resolve(%q) = %q; want the newest full release", in, got)
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "release-05-01-25", "release-05-01-26", "release-09-00-00",
		"prerelease-06-00-00", "light-2403-persian", "light-9999-future",
		"light", "garbage", "release-",
	}

	for _, in := range inputs {
		once := Resolve(in)
		if twice := Resolve(once); twice != once {
			t.Fatalf("Resolve(Resolve(%q)): %q != %q", in, twice, once)
		}
	}
}

func TestTrainingRelease(t *testing.T) {
	t.Parallel()

	if got := TrainingRelease(); got != "light-2409-toyger" {
		t.Fatalf("TrainingRelease() = %q; want the newest light release", got)
	}
}
