package browser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/bubroz/videograbber/internal/model"
)

// Entry is one known profile: its human-readable display name and the
// on-disk directory (or path identifier) it lives in.
type Entry struct {
	DisplayName string
	Dir         string
}

// catalogBackend reads one browser family's native profile registry.
// New browsers are added by adding a backend, not by branching in the
// resolver.
type catalogBackend interface {
	readProfiles(basePath string) ([]Entry, error)
}

// Profiles lists the browser's profiles as ordered (display name, directory)
// entries. The registry is re-read on every call; there is no caching.
func Profiles(b model.Browser) ([]Entry, error) {
	base, err := BasePath(b)
	if err != nil {
		return nil, err
	}
	return profilesAt(base, backendFor(b)), nil
}

// profilesAt reads the registry under base. A missing or unreadable registry
// is not an error: profile listing is an optional convenience, so failures
// degrade to a stderr warning and an empty listing.
func profilesAt(base string, backend catalogBackend) []Entry {
	entries, err := backend.readProfiles(base)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: reading browser profiles: %v\n", err)
		}
		return nil
	}
	return entries
}

func backendFor(b model.Browser) catalogBackend {
	if b == model.BrowserFirefox {
		return firefoxBackend{}
	}
	return chromiumBackend{}
}

// chromiumBackend reads the JSON "Local State" file shared by the Chromium
// family (Chrome, Brave). profile.info_cache maps each profile directory
// name to an object whose "name" field is the display name.
type chromiumBackend struct{}

type chromiumLocalState struct {
	Profile struct {
		InfoCache map[string]struct {
			Name string `json:"name"`
		} `json:"info_cache"`
	} `json:"profile"`
}

func (chromiumBackend) readProfiles(basePath string) ([]Entry, error) {
	data, err := os.ReadFile(filepath.Join(basePath, "Local State"))
	if err != nil {
		return nil, err
	}
	var state chromiumLocalState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse Local State: %w", err)
	}

	// info_cache is a JSON object, so iteration order is undefined. Walk the
	// directory keys sorted and keep the first directory seen for each
	// display name, making collisions deterministic.
	dirs := make([]string, 0, len(state.Profile.InfoCache))
	for dir := range state.Profile.InfoCache {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var entries []Entry
	seen := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		name := state.Profile.InfoCache[dir].Name
		if name == "" {
			name = dir
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, Entry{DisplayName: name, Dir: dir})
	}
	return entries, nil
}

// firefoxBackend reads the INI-style profiles.ini. Every [Profile*] section
// carrying both Name and Path keys contributes one entry.
type firefoxBackend struct{}

func (firefoxBackend) readProfiles(basePath string) ([]Entry, error) {
	path := filepath.Join(basePath, "profiles.ini")
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse profiles.ini: %w", err)
	}

	var entries []Entry
	for _, sec := range cfg.Sections() {
		if !strings.HasPrefix(sec.Name(), "Profile") {
			continue
		}
		name := sec.Key("Name").String()
		dir := sec.Key("Path").String()
		if name == "" || dir == "" {
			continue
		}
		entries = append(entries, Entry{DisplayName: name, Dir: dir})
	}
	return entries, nil
}
