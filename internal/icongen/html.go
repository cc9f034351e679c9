// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icongen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.astrophena.name/base/logger"

	"github.com/PuerkitoBio/goquery"
)

// Possible errors, used in tests.
var (
	errIconLinkMissing     = errors.New("missing icon link")
	errManifestLinkMissing = errors.New("missing manifest link")
)

// CheckHTML verifies that the HTML page at path references the assets
// that [Generate] produces: a link with the apple-touch-icon rel for
// each Apple touch icon in the size list, and a link to the web app
// manifest. The progressive web app icons are reached through the
// manifest, so no link tags are expected for them.
func CheckHTML(ctx context.Context, c *Config, path string) error {
	c.setDefaults()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fmt.Errorf("%s: failed to parse HTML: %w", path, err)
	}

	links := make(map[string][]string) // rel -> hrefs
	doc.Find("head link").Each(func(_ int, sel *goquery.Selection) {
		rel, _ := sel.Attr("rel")
		href, _ := sel.Attr("href")
		links[rel] = append(links[rel], href)
	})

	var errs []error
	for _, s := range c.Sizes {
		if !strings.HasPrefix(s.Name, "apple-touch-icon") {
			continue
		}
		if href, ok := findRef(links["apple-touch-icon"], s.Name); ok {
			logger.Info(ctx, "found icon link",
				slog.String("name", s.Name),
				slog.String("href", href),
			)
			continue
		}
		errs = append(errs, fmt.Errorf("%w: %s", errIconLinkMissing, s.Name))
	}

	if hrefs := links["manifest"]; len(hrefs) > 0 {
		logger.Info(ctx, "found manifest link", slog.String("href", hrefs[0]))
	} else {
		errs = append(errs, fmt.Errorf("%s: %w", path, errManifestLinkMissing))
	}

	return errors.Join(errs...)
}

func findRef(hrefs []string, name string) (string, bool) {
	for _, href := range hrefs {
		if strings.Contains(href, name) {
			return href, true
		}
	}
	return "", false
}
