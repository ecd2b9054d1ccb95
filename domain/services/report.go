package services

import (
	"fmt"
	"strings"
)

// CleanupReport summarises one consistency run over a model
type CleanupReport struct {
	Relocated         []string `json:"relocated"`
	Fixed             []string `json:"fixed"`
	RemovedIllegal    []string `json:"removed_illegal"`
	RemovedDuplicates []string `json:"removed_duplicates"`
}

// Total is the number of changes the run made
func (r *CleanupReport) Total() int {
	return len(r.Relocated) + len(r.Fixed) + len(r.RemovedIllegal) + len(r.RemovedDuplicates)
}

// Clean reports whether the run found nothing to change
func (r *CleanupReport) Clean() bool {
	return r.Total() == 0
}

// Render formats the report for humans
func (r *CleanupReport) Render() string {
	var b strings.Builder
	b.WriteString("Model Consistency Report\n")
	b.WriteString("========================\n")

	if r.Clean() {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	section := func(title string, entries []string) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s (%d):\n", title, len(entries))
		for _, e := range entries {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}

	section("Relocated elements", r.Relocated)
	section("Fixed relationships", r.Fixed)
	section("Removed illegal relationships", r.RemovedIllegal)
	section("Removed duplicate relationships", r.RemovedDuplicates)

	fmt.Fprintf(&b, "\nTotal changes: %d\n", r.Total())
	return b.String()
}
