package model

const (
	// DefaultSourceFile is the fixed input filename. Not configurable
	// from the command line; known limitation of the current design.
	DefaultSourceFile = "sitesgouv.txt"

	// DefaultReportFile is the default path for the persisted report.
	DefaultReportFile = "sitesgouv_rapport.txt"
)

type Config struct {
	SourceFile string
	ReportFile string
	Verbose    bool
}

// DefaultConfig returns the compiled-in configuration. There are no
// flags or environment variables to override it.
func DefaultConfig() Config {
	return Config{
		SourceFile: DefaultSourceFile,
		ReportFile: DefaultReportFile,
	}
}
