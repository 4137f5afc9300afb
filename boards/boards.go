// Package boards bundles the board patterns shipped with the binary.
package boards

import (
	"embed"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// DefaultBoard is the board loaded when no source is given
const DefaultBoard = "boards/glider.json"

//go:embed *.json
var bundled embed.FS

// Lookup returns the bundled board matching name. Both the bare pattern name
// ("glider") and the repository path ("boards/glider.json") resolve. Any other
// directory does not.
func Lookup(name string) ([]byte, bool) {
	dir, base := path.Split(path.Clean(filepath.ToSlash(strings.TrimSpace(name))))
	if dir != "" && dir != path.Dir(DefaultBoard)+"/" {
		return nil, false
	}
	if path.Ext(base) == "" {
		base += ".json"
	}
	data, err := fs.ReadFile(bundled, base)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Names lists the bundled boards without their extension
func Names() []string {
	entries, _ := fs.ReadDir(bundled, ".")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	return names
}
