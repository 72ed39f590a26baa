// Package site exports the portfolio as a directory of static files.
package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"golang.org/x/text/language"

	"boulouiha.dev/internal/content"
	"boulouiha.dev/internal/i18n"
	"boulouiha.dev/internal/render"
	"boulouiha.dev/internal/views"
)

// Builder renders every page of a store into a directory tree.
type Builder struct {
	Bundle        *i18n.Bundle
	Renderer      *render.Renderer
	Lang          language.Tag
	ReducedMotion bool
}

// Report lists the files a build wrote, relative to the output directory.
type Report struct {
	Files []string
}

type indexPage struct {
	rel  string
	opts render.PageOptions
}

// Build renders store into outDir with the default bundle in French.
func Build(store *content.Store, renderer *render.Renderer, outDir string) (Report, error) {
	bundle, err := i18n.Default()
	if err != nil {
		return Report{}, err
	}
	b := &Builder{Bundle: bundle, Renderer: renderer, Lang: language.French}
	return b.Build(store, outDir)
}

// Build writes index.html, more/index.html, archive/index.html, one
// projects/<n>/index.html per record, the static assets and the JSON API
// snapshots. Existing files are overwritten.
func (b *Builder) Build(store *content.Store, outDir string) (Report, error) {
	var rep Report
	write := func(rel string, data []byte) error {
		dst := filepath.Join(outDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", rel, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		rep.Files = append(rep.Files, rel)
		return nil
	}

	opts := func(more bool, selected int) render.PageOptions {
		return render.PageOptions{
			Lang:          b.Lang,
			ShowMore:      more,
			Selected:      selected,
			ReducedMotion: b.ReducedMotion,
			Routes:        render.StaticRoutes{},
		}
	}

	pages := []indexPage{
		{"index.html", opts(false, render.NoSelection)},
		{"more/index.html", opts(true, render.NoSelection)},
	}
	for i := 0; i < store.Len(); i++ {
		rel := path.Join("projects", strconv.Itoa(i), "index.html")
		pages = append(pages, indexPage{rel, opts(i >= views.GridLimit, i)})
	}

	for _, p := range pages {
		var buf bytes.Buffer
		if err := b.Renderer.Index(&buf, render.IndexPage(b.Bundle, store, p.opts)); err != nil {
			return rep, err
		}
		if err := write(p.rel, buf.Bytes()); err != nil {
			return rep, err
		}
	}

	var buf bytes.Buffer
	if err := b.Renderer.Archive(&buf, render.ArchivePage(b.Bundle, store, opts(false, render.NoSelection))); err != nil {
		return rep, err
	}
	if err := write("archive/index.html", buf.Bytes()); err != nil {
		return rep, err
	}

	if err := b.writeAssets(write); err != nil {
		return rep, err
	}

	projects, err := json.MarshalIndent(store.Projects(), "", "  ")
	if err != nil {
		return rep, fmt.Errorf("encode projects: %w", err)
	}
	if err := write("api/projects.json", projects); err != nil {
		return rep, err
	}
	archive, err := json.MarshalIndent(views.BuildArchive(store.Projects()), "", "  ")
	if err != nil {
		return rep, fmt.Errorf("encode archive: %w", err)
	}
	if err := write("api/archive.json", archive); err != nil {
		return rep, err
	}
	return rep, nil
}

func (b *Builder) writeAssets(write func(string, []byte) error) error {
	assets := render.Assets()
	return fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", p, err)
		}
		return write(path.Join("static", p), data)
	})
}
