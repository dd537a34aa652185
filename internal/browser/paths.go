// Package browser locates browser profile directories across operating
// systems and maps human-readable profile names onto the on-disk identifiers
// yt-dlp's --cookies-from-browser expects.
package browser

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bubroz/videograbber/internal/model"
)

// basePaths is the static (OS × browser) table of profile-storage roots.
// Entries use "~/" for the home directory and, on Windows, literal
// %LOCALAPPDATA% / %APPDATA% placeholders expanded from the environment.
var basePaths = map[string]map[model.Browser]string{
	"darwin": {
		model.BrowserBrave:   "~/Library/Application Support/BraveSoftware/Brave-Browser",
		model.BrowserChrome:  "~/Library/Application Support/Google/Chrome",
		model.BrowserFirefox: "~/Library/Application Support/Firefox/Profiles",
	},
	"linux": {
		model.BrowserBrave:   "~/.config/BraveSoftware/Brave-Browser",
		model.BrowserChrome:  "~/.config/google-chrome",
		model.BrowserFirefox: "~/.mozilla/firefox",
	},
	"windows": {
		model.BrowserBrave:   `%LOCALAPPDATA%\BraveSoftware\Brave-Browser`,
		model.BrowserChrome:  `%LOCALAPPDATA%\Google\Chrome`,
		model.BrowserFirefox: `%APPDATA%\Mozilla\Firefox\Profiles`,
	},
}

// windowsEnvVars are expanded by literal substring replacement, and only
// when present in the environment.
var windowsEnvVars = []string{"LOCALAPPDATA", "APPDATA"}

// BasePath returns the profile-storage root for the current OS and browser.
// The returned path is not checked for existence.
func BasePath(b model.Browser) (string, error) {
	return basePathFor(runtime.GOOS, b)
}

// basePathFor is the testable core of BasePath, keyed by an explicit GOOS.
func basePathFor(goos string, b model.Browser) (string, error) {
	byBrowser, ok := basePaths[goos]
	if !ok {
		return "", &UnsupportedPlatformError{OS: goos}
	}
	path, ok := byBrowser[b]
	if !ok {
		return "", &UnsupportedBrowserError{Browser: string(b)}
	}
	if goos == "windows" {
		for _, name := range windowsEnvVars {
			if v, ok := os.LookupEnv(name); ok {
				path = strings.ReplaceAll(path, "%"+name+"%", v)
			}
		}
	}
	return expandHome(path), nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ParseBrowser validates a browser name from user input.
func ParseBrowser(name string) (model.Browser, error) {
	switch b := model.Browser(strings.ToLower(strings.TrimSpace(name))); b {
	case model.BrowserBrave, model.BrowserChrome, model.BrowserFirefox:
		return b, nil
	default:
		return "", &UnsupportedBrowserError{Browser: name}
	}
}
