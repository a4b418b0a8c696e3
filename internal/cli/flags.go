package cli

import "fibtest/internal/config"

// Flags holds command-line flags
type Flags struct {
	Processors   int
	NameFilter   string
	FailFast     bool
	OnlyFailed   bool
	Progress     bool
	Summary      bool
	Strict       bool
	OpenFailures bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors:   f.Processors,
		NameFilter:   f.NameFilter,
		FailFast:     f.FailFast,
		OnlyFailed:   f.OnlyFailed,
		Progress:     f.Progress,
		Summary:      f.Summary,
		Strict:       f.Strict,
		OpenFailures: f.OpenFailures,
	}
}
