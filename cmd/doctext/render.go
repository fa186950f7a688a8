package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/doctext"
)

// Requests returns one request per item, or the crate index without items.
func (c *RenderCmd) Requests() []doctext.Request {
	if len(c.Items) == 0 {
		return []doctext.Request{{Crate: c.Crate, Version: c.Version}}
	}
	reqs := make([]doctext.Request, 0, len(c.Items))
	for _, item := range c.Items {
		reqs = append(reqs, doctext.Request{Crate: c.Crate, Item: item, Version: c.Version})
	}
	return reqs
}

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	reqs := c.Requests()
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", doctext.ErrorMessage(err))
			return err
		}
	}

	if c.Sections {
		return c.runSections(deps, reqs)
	}
	return c.runRender(deps, reqs)
}

func (c *RenderCmd) runRender(deps *Dependencies, reqs []doctext.Request) error {
	// progress is serialized by the renderer
	failed := 0
	progress := func(p doctext.RenderProgress) {
		if p.Error != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", p.Request, errorMessage(p.Error))
		}
	}

	pages, err := deps.Renderer.RenderAll(deps.Ctx, reqs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error rendering: %v\n", err)
		return err
	}

	if deps.Store != nil {
		if err := c.save(deps, pages); err != nil {
			return err
		}
	} else if len(pages) > 0 {
		fmt.Fprintln(deps.Stdout, doctext.FormatPages(pages))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(reqs))
	}
	return nil
}

func (c *RenderCmd) save(deps *Dependencies, pages []*doctext.Page) error {
	for _, page := range pages {
		if err := deps.Store.Save(deps.Ctx, page); err != nil {
			_ = deps.Store.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", page.Request, err)
			return err
		}
	}

	if len(pages) == 0 {
		_ = deps.Store.Abort()
		fmt.Fprintln(deps.Stdout, "No pages saved")
		return nil
	}

	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %d pages\n", len(pages))
	return nil
}

func (c *RenderCmd) runSections(deps *Dependencies, reqs []doctext.Request) error {
	var parts []string
	failed := 0
	for _, req := range reqs {
		outline, err := c.outline(deps, req)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", req, errorMessage(err))
			continue
		}
		if len(reqs) > 1 {
			outline = "## " + req.String() + "\n\n" + outline
		}
		parts = append(parts, outline)
	}

	if len(parts) > 0 {
		fmt.Fprintln(deps.Stdout, strings.Join(parts, "\n\n"))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(reqs))
	}
	return nil
}

func (c *RenderCmd) outline(deps *Dependencies, req doctext.Request) (string, error) {
	markup, err := deps.Source.Acquire(deps.Ctx, req)
	if err != nil {
		return "", err
	}
	root, err := deps.Extractor.Extract(markup)
	if err != nil {
		return "", err
	}
	return doctext.FormatSections(doctext.Sections(root)), nil
}

// errorMessage prefers the message of an application error over its
// decorated Error() text.
func errorMessage(err error) string {
	var e *doctext.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
