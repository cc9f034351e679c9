// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icongen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/base/logger"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// manifestName is the file name of the generated web app manifest.
const manifestName = "manifest.webmanifest"

type manifest struct {
	Name    string         `json:"name,omitempty"`
	Display string         `json:"display,omitempty"`
	Icons   []manifestIcon `json:"icons"`
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type min struct {
	m *minify.M
}

func newMin() *min {
	m := minify.New()
	m.AddFunc("application/json", mjson.Minify)
	return &min{m: m}
}

func (m *min) Bytes(mediaType string, b []byte) ([]byte, error) {
	return m.m.Bytes(mediaType, b)
}

// buildManifest returns the minified web app manifest listing the icons
// of the provided [Config].
func buildManifest(c *Config) ([]byte, error) {
	mf := manifest{
		Name:    c.Title,
		Display: "standalone",
	}
	for _, s := range c.Sizes {
		mf.Icons = append(mf.Icons, manifestIcon{
			Src:   s.Name,
			Sizes: fmt.Sprintf("%dx%d", s.Width, s.Height),
			Type:  "image/png",
		})
	}

	b, err := json.MarshalIndent(mf, "", "  ")
	if err != nil {
		return nil, err
	}
	return newMin().Bytes("application/json", b)
}

func writeManifest(ctx context.Context, c *Config) error {
	b, err := buildManifest(c)
	if err != nil {
		return err
	}
	dst := filepath.Join(c.Dst, manifestName)
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return err
	}
	logger.Info(ctx, "generated web app manifest", slog.String("path", dst))
	return nil
}
