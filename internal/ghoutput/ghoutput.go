// Package ghoutput publishes provisioning results to GitHub Actions files.
package ghoutput

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Write appends key=value outputs to the GITHUB_OUTPUT file. Outside of
// GitHub Actions (no GITHUB_OUTPUT) it is a no-op.
func Write(values map[string]string) error {
	path := strings.TrimSpace(os.Getenv("GITHUB_OUTPUT"))
	if path == "" || len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%s\n", key, sanitize(values[key]))
	}
	return appendFile(path, b.String())
}

// WriteSummary appends a markdown fragment to the GITHUB_STEP_SUMMARY file,
// no-op outside of GitHub Actions.
func WriteSummary(markdown string) error {
	path := strings.TrimSpace(os.Getenv("GITHUB_STEP_SUMMARY"))
	if path == "" || strings.TrimSpace(markdown) == "" {
		return nil
	}
	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}
	return appendFile(path, markdown)
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.WriteString(content)
	return err
}

// sanitize escapes newlines per the single-line GITHUB_OUTPUT format.
func sanitize(value string) string {
	value = strings.ReplaceAll(value, "\r", "%0D")
	return strings.ReplaceAll(value, "\n", "%0A")
}
