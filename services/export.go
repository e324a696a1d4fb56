package services

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/moh-adedamola/portfolio/content"
	"github.com/moh-adedamola/portfolio/errs"
	"github.com/moh-adedamola/portfolio/page"
	"github.com/moh-adedamola/portfolio/resources"
	"github.com/moh-adedamola/portfolio/showcase"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// exportWorkers bounds how many pages render at once.
const exportWorkers = 4

// ExportResult lists the files an export wrote, relative to its output
// directory, in sorted order.
type ExportResult struct {
	OutDir string
	Files  []string
}

// Export writes the static site: the home page, one page per project with
// its overlay open, and the embedded assets. Exported pages never carry live
// update actions, so the output works from any static file host.
//
// Pages render concurrently, each with its own showcase. Every failed page
// is reported; pages that rendered are still written.
func Export(ctx context.Context, site content.Content, outDir, base string) (ExportResult, error) {
	if strings.TrimSpace(outDir) == "" {
		return ExportResult{}, errs.NewMissingRequiredFieldError("out")
	}

	links := showcase.Links{Base: base}
	result := ExportResult{OutDir: outDir}

	var (
		mu       sync.Mutex
		failures []string
	)
	record := func(name string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("Failed to export")
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			return
		}
		result.Files = append(result.Files, name)
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(exportWorkers)

	eg.Go(func() error {
		record("index.html", writePage(egctx, outDir, "index.html", page.Page(site, showcase.New(site.ProjectRepo().FindAll()), links)))
		return nil
	})

	for i, p := range site.ProjectRepo().FindAll() {
		name := filepath.ToSlash(filepath.Join("projects", p.ID.String(), "index.html"))
		eg.Go(func() error {
			s := showcase.New(site.ProjectRepo().FindAll())
			if err := s.Grid().ActivateCard(i); err != nil {
				record(name, err)
				return nil
			}
			record(name, writePage(egctx, outDir, name, page.Page(site, s, links)))
			return nil
		})
	}

	eg.Go(func() error {
		written, err := copyAssets(outDir)
		for _, name := range written {
			record(name, nil)
		}
		if err != nil {
			record("static", err)
		}
		return nil
	})

	_ = eg.Wait()
	sort.Strings(result.Files)

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if len(failures) > 0 {
		sort.Strings(failures)
		return result, errs.NewInternalErrorWithCause("export failed",
			fmt.Errorf("some files failed: %s", strings.Join(failures, "; ")))
	}

	log.Info().Str("out", outDir).Int("files", len(result.Files)).Msg("Exported site")
	return result, nil
}

func writePage(ctx context.Context, outDir, name string, c templ.Component) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return writeFile(outDir, name, buf.Bytes())
}

func copyAssets(outDir string) ([]string, error) {
	var written []string
	err := fs.WalkDir(resources.FS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(resources.FS(), path)
		if err != nil {
			return err
		}
		name := "static/" + path
		if err := writeFile(outDir, name, data); err != nil {
			return err
		}
		written = append(written, name)
		return nil
	})
	return written, err
}

func writeFile(outDir, name string, data []byte) error {
	path := filepath.Join(outDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
