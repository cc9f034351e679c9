// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/icongen/internal/icongen"
)

func main() { cli.Main(new(app)) }

type app struct {
	dir      string
	title    string
	manifest bool
	watch    bool
	check    string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dir, "dir", "public", "Write icons to `dir`. It must already exist.")
	fs.StringVar(&a.title, "title", "", "Web application `name` recorded in the manifest.")
	fs.BoolVar(&a.manifest, "manifest", false, "Also write a web app manifest listing the icons.")
	fs.BoolVar(&a.watch, "watch", false, "Watch the source image and regenerate icons on change.")
	fs.StringVar(&a.check, "check", "", "Check that the HTML `file` references the generated assets instead of generating them.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 1 {
		return fmt.Errorf("%w: want at most one input image", cli.ErrInvalidArgs)
	}

	c := &icongen.Config{
		Dst:      a.dir,
		Title:    a.title,
		Manifest: a.manifest,
	}
	if len(env.Args) == 1 {
		c.Src = env.Args[0]
	}

	if a.check != "" {
		return icongen.CheckHTML(ctx, c, a.check)
	}
	if a.watch {
		return icongen.Watch(ctx, c)
	}
	return icongen.Generate(ctx, c)
}
