// Package utils holds small helpers shared across packages.
package utils

import "strings"

// ParseCSV splits a comma-separated list, trimming entries and dropping empty ones.
// Returns nil when nothing remains.
func ParseCSV(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
