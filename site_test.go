package gats

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderIndex(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := RenderIndex(&buf); err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}

	html := buf.String()

	for _, want := range []string{
		"<strong>light-2409-toyger</strong>",
		"light-2409-toyger (recommended)",
		"release-08-02-02",
		"release-05-01-25",
		"light-2401-ocicat",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("index misses %q:\n%s", want, html)
		}
	}

	// newest first
	if strings.Index(html, "release-08-02-02") > strings.Index(html, "release-05-01-25") {
		t.Fatalf("full releases not newest first:\n%s", html)
	}
}

func TestWriteIndex(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "index.html")
	if err := WriteIndex(context.Background(), dest); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}

	if !strings.Contains(string(data), "Supported releases") {
		t.Fatalf("index content unexpected:\n%s", data)
	}
}
