// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Icongen generates web application icon assets from a single source image.

# Usage

	$ icongen [flags] [input_image]

Icongen loads the input image (icon.png by default), converts it to RGBA
and writes resized PNG copies of it into the output directory (public by
default): the 192x192 and 512x512 progressive web app icons and the
180x180 Apple touch icon. Resizing uses the Lanczos filter. The output
directory must already exist; existing icons are overwritten.

With the -manifest flag it also writes a manifest.webmanifest listing
the generated icons. With the -watch flag it keeps running and
regenerates the icons every time the input image changes. With the
-check flag it generates nothing and instead verifies that the provided
HTML file references the generated assets.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
