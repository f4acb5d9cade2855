package file

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MidiExt = ".mid"

// ExportPath places name in dir with a MIDI extension. An empty name gets a
// random one so exports never overwrite each other.
func ExportPath(dir string, name string) string {
	if name == "" {
		name = uuid.New().String()
	}
	if !strings.EqualFold(filepath.Ext(name), MidiExt) && !strings.EqualFold(filepath.Ext(name), ".midi") {
		name += MidiExt
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
