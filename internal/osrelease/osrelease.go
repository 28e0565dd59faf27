// Package osrelease reads distribution metadata from /etc/os-release.
package osrelease

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultPath is where Linux distributions place os-release data.
const DefaultPath = "/etc/os-release"

// Info holds the os-release fields provisionctl cares about.
type Info struct {
	// ID is the lowercase distribution identifier, e.g. "ubuntu".
	ID string
	// VersionID is the release version, e.g. "22.04".
	VersionID string
	// PrettyName is the human-readable distribution name.
	PrettyName string
}

// IsUbuntu reports whether the host identifies itself as Ubuntu.
func (i Info) IsUbuntu() bool {
	return i.ID == "ubuntu"
}

// Read loads Info from DefaultPath.
func Read() (Info, error) {
	return ReadFile(DefaultPath)
}

// ReadFile parses an os-release file. Values may be quoted per the
// os-release(5) format; quotes are stripped.
func ReadFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open os-release: %w", err)
	}
	defer func() { _ = f.Close() }()

	var info Info
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"'`)
		switch key {
		case "ID":
			info.ID = strings.ToLower(value)
		case "VERSION_ID":
			info.VersionID = value
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}
	if err := scanner.Err(); err != nil {
		return Info{}, fmt.Errorf("read os-release: %w", err)
	}
	return info, nil
}
