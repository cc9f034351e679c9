// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icongen generates web application icon assets from a single
source image.

Given a source raster image, it writes resized PNG copies of it at the
sizes needed by a progressive web app manifest and the iOS home screen
into an output directory. The source is converted to RGBA before
resizing, so icons keep their transparency regardless of the source
color mode, and resampling is done with the Lanczos filter.
*/
package icongen

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/base/logger"

	"github.com/disintegration/imaging"
)

// Size describes a single icon to generate.
type Size struct {
	// Width and Height are the target dimensions in pixels.
	Width, Height int
	// Name is the output file name.
	Name string
}

// DefaultSizes are the icons needed by a progressive web app manifest
// and the iOS home screen.
var DefaultSizes = []Size{
	{Width: 192, Height: 192, Name: "pwa-192x192.png"},
	{Width: 512, Height: 512, Name: "pwa-512x512.png"},
	{Width: 180, Height: 180, Name: "apple-touch-icon.png"},
}

// Config represents a generation configuration.
type Config struct {
	// Src is the path to the source image. If empty, uses icon.png in the
	// current directory.
	Src string
	// Dst is the directory where to write icons. It must already exist.
	// If empty, uses the public directory.
	Dst string
	// Sizes is the list of icons to generate, in order. If empty, uses
	// DefaultSizes.
	Sizes []Size
	// Manifest determines if a web app manifest listing the generated
	// icons should be written alongside them.
	Manifest bool
	// Title is the web application name recorded in the manifest.
	Title string
}

func (c *Config) setDefaults() {
	if c.Src == "" {
		c.Src = "icon.png"
	}
	if c.Dst == "" {
		c.Dst = "public"
	}
	if len(c.Sizes) == 0 {
		c.Sizes = DefaultSizes
	}
}

// Generate generates icons based on the provided [Config].
//
// The output directory must already exist: if it doesn't, Generate logs
// a notice and returns nil without writing anything. Any other failure
// aborts the run; icons written before the failure are left in place.
func Generate(ctx context.Context, c *Config) error {
	c.setDefaults()

	if _, err := os.Stat(c.Dst); os.IsNotExist(err) {
		logger.Info(ctx, "output directory does not exist, nothing to do", slog.String("dir", c.Dst))
		return nil
	} else if err != nil {
		return err
	}

	img, err := imaging.Open(c.Src)
	if err != nil {
		return fmt.Errorf("failed to open source image %s: %w", c.Src, err)
	}
	logger.Info(ctx, "loaded source image",
		slog.String("path", c.Src),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
	)

	src := normalize(img)

	for _, s := range c.Sizes {
		icon := imaging.Resize(src, s.Width, s.Height, imaging.Lanczos)
		dst := filepath.Join(c.Dst, s.Name)
		if err := writePNG(dst, icon); err != nil {
			return fmt.Errorf("failed to generate %s: %w", s.Name, err)
		}
		logger.Info(ctx, "generated icon", slog.String("path", dst))
	}

	if c.Manifest {
		if err := writeManifest(ctx, c); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
	}

	return nil
}

// normalize returns img as an 8-bit RGBA image, converting it if needed.
// This guarantees an alpha channel exists before resizing, so icons with
// transparency are preserved even when the source is RGB, grayscale or
// paletted.
func normalize(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	return imaging.Clone(img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
