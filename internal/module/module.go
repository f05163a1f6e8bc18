package module

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Fixed entry paths inside a module zip.
const (
	markerUpdaterScript = "META-INF/com/google/android/updater-script"
	markerUpdateBinary  = "META-INF/com/google/android/update-binary"
	propEntry           = "module.prop"
)

// Sentinel errors for the skip conditions. The pipeline matches on these to
// pick the warning wording; anything else is a read/decode failure.
var (
	ErrNotModule = errors.New("missing updater-script or update-binary")
	ErrNoProp    = errors.New("no module.prop entry")
	ErrNoID      = errors.New("no usable id in module.prop")
)

// Module is the metadata record extracted from one archive. ID is the only
// field consulted for registration; the others feed the stats display.
type Module struct {
	ID          string
	Name        string
	Version     string
	VersionCode string
	Author      string
	File        string // Zip basename the record came from.
}

// Inspect opens the zip at path, validates the installer markers, and parses
// module.prop. The archive is closed before returning regardless of outcome.
// Returns ErrNotModule, ErrNoProp or ErrNoID for the skip conditions, or a
// wrapped error when the archive cannot be read at all.
func Inspect(path string) (*Module, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		entries[f.Name] = f
	}

	if entries[markerUpdaterScript] == nil || entries[markerUpdateBinary] == nil {
		return nil, ErrNotModule
	}

	prop := entries[propEntry]
	if prop == nil {
		return nil, ErrNoProp
	}

	data, err := readEntry(prop)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", propEntry, err)
	}

	id := idFromProp(data)
	if id == "" {
		return nil, ErrNoID
	}

	props := ParseProps(data)
	return &Module{
		ID:          id,
		Name:        props["name"],
		Version:     props["version"],
		VersionCode: props["versionCode"],
		Author:      props["author"],
		File:        filepath.Base(path),
	}, nil
}

// readEntry decompresses one zip entry fully into memory. module.prop files
// are tiny, so no size guard is needed beyond the zip format itself.
func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// idFromProp scans trimmed lines for the literal "id=" prefix and returns the
// first non-empty value after the first '='. An "id=" line with a blank value
// does not stop the scan; a later non-empty one still wins.
func idFromProp(data []byte) string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "id=") {
			continue
		}
		if id := strings.TrimSpace(line[len("id="):]); id != "" {
			return id
		}
	}
	return ""
}

// ParseProps parses key=value lines into a map. Keys and values are trimmed;
// lines without '=' and comment lines are ignored. The first non-empty value
// for a key wins, matching idFromProp semantics.
func ParseProps(data []byte) map[string]string {
	props := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		if _, exists := props[key]; !exists {
			props[key] = value
		}
	}
	return props
}
