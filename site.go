package gats

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// indexTemplate renders the supported-release index page.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Supported releases</title></head>
<body>
<h1>Supported releases</h1>
<p>Recommended release: <strong>{{.Recommended}}</strong></p>
<h2>Full releases</h2>
<ul>
{{- range .Releases}}
  <li>{{.}}{{if eq . $.Recommended}} (recommended){{end}}</li>
{{- end}}
</ul>
<h2>Light releases</h2>
<ul>
{{- range .LightReleases}}
  <li>{{.}}{{if eq . $.Recommended}} (recommended){{end}}</li>
{{- end}}
</ul>
</body>
</html>
`))

// RenderIndex writes the HTML release index to w, newest releases first.
func (c *Catalog) RenderIndex(w io.Writer) error {
	data := struct {
		Recommended   string
		Releases      []string
		LightReleases []string
	}{
		Recommended:   c.Recommended(),
		Releases:      c.Releases(),
		LightReleases: c.LightReleases(),
	}

	return indexTemplate.Execute(w, data)
}

// WriteIndex renders the release index and uploads it to url (anything afs
// understands: a plain path, file://, mem://).
func (c *Catalog) WriteIndex(ctx context.Context, url string) error {
	var buf bytes.Buffer
	if err := c.RenderIndex(&buf); err != nil {
		return err
	}

	if err := afs.New().Upload(ctx, url, file.DefaultFileOsMode, &buf); err != nil {
		return fmt.Errorf("write %s: %w", url, err)
	}

	return nil
}

// RenderIndex renders the default catalog's release index.
func RenderIndex(w io.Writer) error {
	return defaultCatalog.RenderIndex(w)
}

// WriteIndex writes the default catalog's release index to url.
func WriteIndex(ctx context.Context, url string) error {
	return defaultCatalog.WriteIndex(ctx, url)
}
