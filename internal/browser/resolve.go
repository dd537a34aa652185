package browser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bubroz/videograbber/internal/model"
)

// ResolveProfileDir maps an optional user-supplied profile identifier to the
// on-disk directory identifier. Resolution order:
//
//  1. no identifier → the literal "Default"
//  2. identifier matches a catalog display name → that profile's directory
//  3. {base}/{identifier} exists on disk → identifier passes through
//  4. otherwise → ProfileNotFoundError listing every known profile
func ResolveProfileDir(b model.Browser, profile string) (string, error) {
	base, err := BasePath(b)
	if err != nil {
		return "", err
	}
	return resolveProfileDirAt(base, backendFor(b), profile)
}

// resolveProfileDirAt is the path-injectable core of ResolveProfileDir.
func resolveProfileDirAt(base string, backend catalogBackend, profile string) (string, error) {
	if profile == "" {
		return "Default", nil
	}

	entries := profilesAt(base, backend)
	for _, e := range entries {
		if e.DisplayName == profile {
			return e.Dir, nil
		}
	}

	if _, err := os.Stat(filepath.Join(base, profile)); err == nil {
		return profile, nil
	}

	return "", &ProfileNotFoundError{Profile: profile, Known: entries}
}

// Spec composes the --cookies-from-browser argument for yt-dlp. The Chromium
// family embeds the full profile path; Firefox takes the profile identifier
// by name only.
func Spec(b model.Browser, basePath, profileDir string) string {
	if b == model.BrowserFirefox {
		return fmt.Sprintf("firefox:%s", profileDir)
	}
	return fmt.Sprintf("%s:%s/%s", b, basePath, profileDir)
}

// ResolveSpec resolves the browser base path and profile directory and
// composes the final browser specification string.
func ResolveSpec(b model.Browser, profile string) (string, error) {
	base, err := BasePath(b)
	if err != nil {
		return "", err
	}
	dir, err := resolveProfileDirAt(base, backendFor(b), profile)
	if err != nil {
		return "", err
	}
	return Spec(b, base, dir), nil
}
