// Package diag collects structured warnings and notices produced while
// indexing, merging, or cleaning a model, so callers can return them to
// API clients instead of losing them in a log stream.
package diag

import "fmt"

// Level classifies a diagnostic entry
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Diagnostic is a single structured notice about a model operation
type Diagnostic struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Collector accumulates diagnostics during an operation. The zero value
// is ready to use. Collectors are not safe for concurrent use.
type Collector struct {
	entries []Diagnostic
}

// Infof records an informational diagnostic
func (c *Collector) Infof(format string, args ...interface{}) {
	c.entries = append(c.entries, Diagnostic{Level: LevelInfo, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning diagnostic
func (c *Collector) Warnf(format string, args ...interface{}) {
	c.entries = append(c.entries, Diagnostic{Level: LevelWarning, Message: fmt.Sprintf(format, args...)})
}

// Entries returns the collected diagnostics in order of occurrence
func (c *Collector) Entries() []Diagnostic {
	return c.entries
}

// Warnings returns only the warning-level diagnostics
func (c *Collector) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range c.entries {
		if d.Level == LevelWarning {
			out = append(out, d)
		}
	}
	return out
}

// Len reports the number of collected diagnostics
func (c *Collector) Len() int {
	return len(c.entries)
}
