package logger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata, matching the
// Metadata() method of zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of a rendered error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries traverses the error chain, one entry per zerr level.
// A non-zerr error terminates the chain with its full Error() text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	current := err
	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders the chain hierarchically: the first entry as the
// main error, the rest indented under a "Caused by:" header. Metadata keys
// are sorted for stable output.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, metadataLines(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, metadataLines(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func metadataLines(md map[string]any, indent string) []string {
	if len(md) == 0 {
		return nil
	}
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, indent+k+": "+toString(md[k]))
	}
	return lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
