package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// settleDelay gives the filesystem a moment to make the tool's output
// visible after process exit.
const settleDelay = 500 * time.Millisecond

var mediaExts = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".webm": true,
}

// LocateMedia finds the downloaded media file in dir. It first looks for a
// media file whose name carries the video id, then falls back to any media
// file present. Returns ok=false when the directory holds no media at all;
// that is not a failure, merely a result with no path.
func LocateMedia(dir, id string) (string, bool) {
	time.Sleep(settleDelay)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var fallback string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !mediaExts[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		if id != "" && strings.Contains(name, "["+id+"]") {
			return filepath.Join(dir, name), true
		}
		if fallback == "" {
			fallback = filepath.Join(dir, name)
		}
	}
	if fallback != "" {
		return fallback, true
	}
	return "", false
}
