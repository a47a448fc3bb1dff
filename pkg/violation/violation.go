// Package violation classifies epiccheck output into severity buckets.
//
// Classification is a keyword frequency count, not a parse of violation
// records: every occurrence of a marker anywhere in the output counts,
// including occurrences inside longer words ("INFORMATION" counts as INFO).
// Counts are therefore an approximation of the real number of violations.
package violation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity markers emitted by epiccheck. Matching is case-sensitive.
const (
	MarkerFatal = "FATAL"
	MarkerMajor = "MAJOR"
	MarkerMinor = "MINOR"
	MarkerInfo  = "INFO"
)

// Markers returns the severity markers from most to least severe.
func Markers() []string {
	return []string{MarkerFatal, MarkerMajor, MarkerMinor, MarkerInfo}
}

// Counts holds per-severity marker counts for one checker run.
type Counts struct {
	Fatal int
	Major int
	Minor int
	Info  int
	Total int // always Fatal+Major+Minor+Info
}

// Classify counts non-overlapping occurrences of each marker in output.
// Any input, including the empty string, yields a valid result.
func Classify(output string) Counts {
	c := Counts{
		Fatal: strings.Count(output, MarkerFatal),
		Major: strings.Count(output, MarkerMajor),
		Minor: strings.Count(output, MarkerMinor),
		Info:  strings.Count(output, MarkerInfo),
	}
	c.Total = c.Fatal + c.Major + c.Minor + c.Info
	return c
}

// Get returns the count for marker, or 0 for an unknown marker.
func (c Counts) Get(marker string) int {
	switch marker {
	case MarkerFatal:
		return c.Fatal
	case MarkerMajor:
		return c.Major
	case MarkerMinor:
		return c.Minor
	case MarkerInfo:
		return c.Info
	default:
		return 0
	}
}

// Status derives the report status: conforming iff there are no violations.
func (c Counts) Status() Status {
	if c.Total == 0 {
		return Conforming
	}
	return NonConforming
}

// Label returns the display label for a marker ("FATAL" -> "Fatal").
func Label(marker string) string {
	return cases.Title(language.English).String(strings.ToLower(marker))
}
