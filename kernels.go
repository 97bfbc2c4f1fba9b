package gats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// KernelSpec is the jupyter kernel-launcher record materialized for one
// supported release.
type KernelSpec struct {
	DisplayName string            `json:"display_name"`
	Language    string            `json:"language"`
	Argv        []string          `json:"argv"`
	Env         map[string]string `json:"env,omitempty"`
}

// KernelSpecFor builds the launcher spec for one supported release. topDir
// is the software installation root the launcher argv points into.
func KernelSpecFor(release, topDir string) KernelSpec {
	return KernelSpec{
		DisplayName: "Belle2 (" + release + ")",
		Language:    "python",
		Argv: []string{
			path.Join(topDir, "tools", "b2execute"), "-x", "python3",
			release, "-m", "ipykernel_launcher",
			"-f", "{connection_file}",
		},
		Env: map[string]string{"BELLE2_RELEASE": release},
	}
}

// kernelName derives the kernel directory name for a release. The patch
// version of full releases is stripped so kernels survive patch bumps:
// "release-06-00-14" -> "belle2_release-06-00".
func kernelName(release string) string {
	name := release
	if strings.HasPrefix(name, "release") {
		if i := strings.LastIndex(name, "-"); i > 0 {
			name = name[:i]
		}
	}

	return "belle2_" + name
}

// kernelLogos are copied into each kernel directory when present in the
// tools directory of the installation.
var kernelLogos = []string{"logo-64x64.png", "logo-32x32.png"}

// WriteKernels creates or updates one jupyter kernel per supported (light)
// release under targetDir. Both directories accept anything afs
// understands (a plain path, file://, mem://). Returns the releases a
// kernel was written for.
func (c *Catalog) WriteKernels(ctx context.Context, targetDir, topDir string) ([]string, error) {
	fs := afs.New()
	toolsDir := path.Join(topDir, "tools")

	if ok, _ := fs.Exists(ctx, targetDir); !ok {
		if err := fs.Create(ctx, targetDir, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("create %s: %w", targetDir, err)
		}
	}

	var written []string
	for _, release := range append(append([]string(nil), c.releases...), c.lightReleases...) {
		kernelDir := path.Join(targetDir, kernelName(release))
		if ok, _ := fs.Exists(ctx, kernelDir); !ok {
			if err := fs.Create(ctx, kernelDir, file.DefaultDirOsMode, true); err != nil {
				return written, fmt.Errorf("create %s: %w", kernelDir, err)
			}
		}

		for _, logo := range kernelLogos {
			src := path.Join(toolsDir, logo)
			if ok, _ := fs.Exists(ctx, src); ok {
				if err := fs.Copy(ctx, src, path.Join(kernelDir, logo)); err != nil {
					return written, fmt.Errorf("copy %s: %w", logo, err)
				}
			}
		}

		spec, err := json.MarshalIndent(KernelSpecFor(release, topDir), "", "    ")
		if err != nil {
			return written, err
		}

		dest := path.Join(kernelDir, "kernel.json")
		if err := fs.Upload(ctx, dest, file.DefaultFileOsMode, bytes.NewReader(spec)); err != nil {
			return written, fmt.Errorf("write %s: %w", dest, err)
		}

		written = append(written, release)
	}

	return written, nil
}

// WriteKernels writes kernels for the default catalog. See
// Catalog.WriteKernels.
func WriteKernels(ctx context.Context, targetDir, topDir string) ([]string, error) {
	return defaultCatalog.WriteKernels(ctx, targetDir, topDir)
}
