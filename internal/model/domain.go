package model

// ValidSuffixes are the accepted endings for a normalized domain.
// The list is deliberately permissive and overlapping: ".fr" subsumes
// ".gouv.fr", so in practice almost everything ending in ".fr" passes.
// Downstream counts rely on this behavior, do not tighten it.
var ValidSuffixes = []string{
	".gouv.fr", ".fr", ".gouv.nc", ".nc", ".gouv.pf", ".pref.gouv.fr",
}

// RejectedLine records a non-empty, non-comment source line whose token
// failed suffix validation.
type RejectedLine struct {
	Number int    // 1-based line number in the source file
	Text   string // trimmed original line, truncated to 50 characters
}

// SourceData is the loader's output: the deduplicated, sorted domain
// sequence plus the bookkeeping needed by the analyzer and reporter.
// It is never mutated after the loader returns it.
type SourceData struct {
	Path     string   // source file path, echoed into the report
	Domains  []string // normalized, deduplicated, sorted ascending
	RawLines int      // count of non-empty lines in the source file
	Rejected []RejectedLine
}
