package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/doctext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Source and Extractor serve the sections outline.
	Source    doctext.Source
	Extractor doctext.Extractor

	Renderer doctext.PageRenderer

	// Store is nil unless pages are written to a directory.
	Store doctext.PageStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crate        string        `arg:"" help:"Crate name, e.g. serde or tokio-util"`
	Items        []string      `arg:"" optional:"" help:"Items within the crate, e.g. struct.Rope, de or iter::trait.Chain"`
	Online       bool          `short:"o" help:"Fetch pre-rendered documentation from the documentation host instead of running cargo doc"`
	Mode         string        `short:"m" default:"text" enum:"text,lines,markdown" help:"Output format: text, lines or markdown"`
	Selector     string        `short:"s" default:"#main-content" help:"CSS selector of the documentation body"`
	Extractor    string        `short:"e" default:"selector" enum:"selector,auto,readability,trafilatura" help:"How the documentation body is located: selector, auto, readability or trafilatura"`
	CrateVersion string        `short:"V" name:"crate-version" help:"Crate version (default: latest)"`
	Timeout      time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Concurrency  int           `short:"c" default:"4" help:"Pages rendered at once"`
	Browser      bool          `help:"Render pages in headless Chrome (requires --online)"`
	Sections     bool          `help:"Print an outline of the page headings instead of the text"`
	Output       string        `help:"Write pages to files below this directory instead of stdout"`
	Verbose      bool          `short:"v" help:"Log fetches and extraction to stderr"`
	Host         string        `env:"DOCTEXT_HOST" default:"https://docs.rs" help:"Documentation host used with --online"`
}

// RenderCmd renders the requested pages of one crate.
type RenderCmd struct {
	Crate    string
	Items    []string
	Version  string
	Sections bool
}
