package cli

import "verity/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile      string
	ProjectPath     string
	NameFilter      string
	Suite           string
	JSON            bool
	OutputDir       string
	MetricsTextfile string
	LogLevel        string
	Progress        bool
	Summary         bool
	View            bool
	NoColor         bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:      f.ConfigFile,
		ProjectPath:     f.ProjectPath,
		NameFilter:      f.NameFilter,
		Suite:           f.Suite,
		JSON:            f.JSON,
		OutputDir:       f.OutputDir,
		MetricsTextfile: f.MetricsTextfile,
		LogLevel:        f.LogLevel,
		Progress:        f.Progress,
		Summary:         f.Summary,
		View:            f.View,
		NoColor:         f.NoColor,
	}
}
