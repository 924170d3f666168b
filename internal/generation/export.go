// Package generation renders the portfolio to static files for hosting
// without the Go server.
package generation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"skc.dev/internal/components"
	"skc.dev/internal/services"
)

var ErrNoOutputDir = errors.New("output directory is required")

// Options configures an export
type Options struct {
	// MailEnabled renders the contact form as usable. Leave it off unless the
	// exported site is served next to the contact API.
	MailEnabled bool
	// Workers bounds concurrent file writes; <= 0 means 4
	Workers int
	Now     func() time.Time
	Logger  *zap.Logger
}

// File is one written output
type File struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

// Exporter writes the page, its JSON data and the static assets
type Exporter struct {
	portfolio *services.PortfolioService
	static    fs.FS
	opts      Options
}

// NewExporter creates an Exporter. static may be nil to skip asset copying.
func NewExporter(ps *services.PortfolioService, static fs.FS, opts Options) *Exporter {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Exporter{portfolio: ps, static: static, opts: opts}
}

// Export writes every output under dir and returns them sorted by path
func (e *Exporter) Export(dir string) ([]File, error) {
	if dir == "" {
		return nil, ErrNoOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	page, err := e.renderPage()
	if err != nil {
		return nil, err
	}
	animations, err := json.MarshalIndent(e.portfolio.Animations(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode animations: %w", err)
	}
	portfolio, err := json.MarshalIndent(e.portfolio.Portfolio(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode portfolio: %w", err)
	}

	var (
		mu    sync.Mutex
		files []File
	)
	record := func(path string, n int64) {
		mu.Lock()
		files = append(files, File{Path: path, Bytes: n})
		mu.Unlock()
		e.opts.Logger.Debug("wrote file", zap.String("path", path), zap.Int64("bytes", n))
	}

	var g errgroup.Group
	g.SetLimit(e.opts.Workers)

	outputs := map[string][]byte{
		"index.html":      page,
		"animations.json": animations,
		"portfolio.json":  portfolio,
	}
	for name, data := range outputs {
		name, data := name, data // per-iteration copy for go 1.21 loop semantics
		g.Go(func() error {
			n, err := writeFile(filepath.Join(dir, name), bytes.NewReader(data))
			if err != nil {
				return err
			}
			record(name, n)
			return nil
		})
	}

	if e.static != nil {
		err := fs.WalkDir(e.static, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || filepath.Ext(path) == ".go" {
				return err
			}
			g.Go(func() error {
				n, err := copyAsset(e.static, path, filepath.Join(dir, "static", filepath.FromSlash(path)))
				if err != nil {
					return err
				}
				record(filepath.ToSlash(filepath.Join("static", path)), n)
				return nil
			})
			return nil
		})
		if err != nil {
			_ = g.Wait()
			return nil, fmt.Errorf("failed to walk static assets: %w", err)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	e.opts.Logger.Info("export complete", zap.String("dir", dir), zap.Int("files", len(files)))
	return files, nil
}

func (e *Exporter) renderPage() ([]byte, error) {
	var buf bytes.Buffer
	page := components.Page(components.PageData{
		Portfolio:   e.portfolio.Portfolio(),
		MailEnabled: e.opts.MailEnabled,
		Animations:  e.portfolio.Animations(),
		Now:         e.opts.Now(),
	})
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

func copyAsset(src fs.FS, name, dst string) (int64, error) {
	f, err := src.Open(name)
	if err != nil {
		return 0, fmt.Errorf("failed to open asset %s: %w", name, err)
	}
	defer f.Close()
	return writeFile(dst, f)
}

func writeFile(path string, r io.Reader) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}
