package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bubroz/videograbber/internal/model"
)

// ErrNoMetadata is returned when the captured tool output contains no
// JSON-shaped line at all.
var ErrNoMetadata = errors.New("no JSON metadata found in tool output")

// ParseError wraps a failure to decode the JSON status line.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse metadata JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const unknown = "Unknown"

// Reduce scans captured yt-dlp stdout for JSON object lines and reduces the
// last one to the simplified schema. yt-dlp may print several JSON-shaped
// lines during a run; the last reflects the final resolved metadata after
// all processing steps, so only that one is parsed. The returned id is the
// video id used in output file names ("unknown" when absent).
func Reduce(stdout string) (model.SimplifiedMetadata, string, error) {
	var lastJSON string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "{") {
			lastJSON = strings.TrimSpace(line)
		}
	}
	if lastJSON == "" {
		return model.SimplifiedMetadata{}, "", ErrNoMetadata
	}

	// Decode with UseNumber so passthrough scalars (view counts) survive a
	// reduce→persist→read round trip without float mangling.
	dec := json.NewDecoder(strings.NewReader(lastJSON))
	dec.UseNumber()
	var full map[string]any
	if err := dec.Decode(&full); err != nil {
		return model.SimplifiedMetadata{}, "", &ParseError{Err: err}
	}

	meta := model.SimplifiedMetadata{
		Title:      getString(full, "title", unknown),
		Creator:    getString(full, "uploader", unknown),
		UploadDate: FormatDate(getString(full, "upload_date", "")),
		Duration:   FormatDuration(getNumber(full, "duration")),
		Resolution: fmt.Sprintf("%sx%s", getScalar(full, "width"), getScalar(full, "height")),
		ViewCount:  getPassthrough(full, "view_count"),
		URL:        getString(full, "webpage_url", unknown),
	}
	return meta, getString(full, "id", "unknown"), nil
}

func getString(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return def
}

func getNumber(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return v
	default:
		return 0
	}
}

// getScalar renders a resolution component, using "?" when absent.
func getScalar(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case json.Number:
		return v.String()
	case string:
		if v != "" {
			return v
		}
	}
	return "?"
}

// getPassthrough carries a scalar field through unchanged, defaulting to
// "Unknown" when absent or null.
func getPassthrough(m map[string]any, key string) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return unknown
}
