package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bubroz/videograbber/internal/model"
)

// SidecarName builds the sidecar file name for a video: "{title} [{id}].info.json".
func SidecarName(title, id string) string {
	return fmt.Sprintf("%s [%s].info.json", title, id)
}

// WriteSidecar persists the reduced metadata as pretty-printed JSON next to
// the media file. Output is UTF-8 with 2-space indent and non-ASCII
// preserved (no HTML escaping).
func WriteSidecar(outDir string, meta model.SimplifiedMetadata, id string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}

	path := filepath.Join(outDir, SidecarName(meta.Title, id))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write metadata sidecar: %w", err)
	}
	return path, nil
}

// ReadSidecar loads a previously written sidecar file.
func ReadSidecar(path string) (model.SimplifiedMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SimplifiedMetadata{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var meta model.SimplifiedMetadata
	if err := dec.Decode(&meta); err != nil {
		return model.SimplifiedMetadata{}, fmt.Errorf("parse sidecar %s: %w", filepath.Base(path), err)
	}
	return meta, nil
}
