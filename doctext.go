// Package doctext renders Rust crate documentation as terminal-friendly text.
// It acquires a rustdoc page, either from a documentation host or from a local
// cargo build, isolates the documentation body, and linearizes it into plain
// text or markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, cargo/, htmltomarkdown/).
package doctext
