package doctext

// Generator identifies the tool that produced a documentation page.
type Generator string

// Recognized documentation generators.
const (
	GeneratorUnknown    Generator = ""
	GeneratorRustdoc    Generator = "rustdoc"
	GeneratorSphinx     Generator = "sphinx"
	GeneratorMkDocs     Generator = "mkdocs"
	GeneratorDocusaurus Generator = "docusaurus"
	GeneratorGodoc      Generator = "godoc"
)

// GeneratorDetector identifies the generator of a documentation page.
type GeneratorDetector interface {
	// Detect returns GeneratorUnknown when no generator is recognized.
	Detect(html string) Generator
}
