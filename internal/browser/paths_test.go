package browser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bubroz/videograbber/internal/model"
)

func TestBasePathFor(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	tests := []struct {
		name    string
		goos    string
		browser model.Browser
		want    string
	}{
		{"darwin brave", "darwin", model.BrowserBrave, filepath.Join(home, "Library/Application Support/BraveSoftware/Brave-Browser")},
		{"darwin firefox", "darwin", model.BrowserFirefox, filepath.Join(home, "Library/Application Support/Firefox/Profiles")},
		{"linux chrome", "linux", model.BrowserChrome, filepath.Join(home, ".config/google-chrome")},
		{"linux firefox", "linux", model.BrowserFirefox, filepath.Join(home, ".mozilla/firefox")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := basePathFor(tt.goos, tt.browser)
			if err != nil {
				t.Fatalf("basePathFor: %v", err)
			}
			if got != tt.want {
				t.Errorf("basePathFor(%s, %s) = %q, want %q", tt.goos, tt.browser, got, tt.want)
			}
		})
	}
}

func TestBasePathForWindowsEnvExpansion(t *testing.T) {
	t.Setenv("LOCALAPPDATA", `C:\Users\me\AppData\Local`)
	t.Setenv("APPDATA", `C:\Users\me\AppData\Roaming`)

	got, err := basePathFor("windows", model.BrowserChrome)
	if err != nil {
		t.Fatalf("basePathFor: %v", err)
	}
	if want := `C:\Users\me\AppData\Local\Google\Chrome`; got != want {
		t.Errorf("chrome base = %q, want %q", got, want)
	}

	got, err = basePathFor("windows", model.BrowserFirefox)
	if err != nil {
		t.Fatalf("basePathFor: %v", err)
	}
	if want := `C:\Users\me\AppData\Roaming\Mozilla\Firefox\Profiles`; got != want {
		t.Errorf("firefox base = %q, want %q", got, want)
	}
}

func TestBasePathForUnsupportedPlatform(t *testing.T) {
	_, err := basePathFor("plan9", model.BrowserBrave)
	var pe *UnsupportedPlatformError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want UnsupportedPlatformError", err)
	}
	if !strings.Contains(err.Error(), "plan9") {
		t.Errorf("error does not name the OS: %v", err)
	}
}

func TestParseBrowser(t *testing.T) {
	tests := []struct {
		in      string
		want    model.Browser
		wantErr bool
	}{
		{"brave", model.BrowserBrave, false},
		{"Chrome", model.BrowserChrome, false},
		{" firefox ", model.BrowserFirefox, false},
		{"safari", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBrowser(tt.in)
			if tt.wantErr {
				var ube *UnsupportedBrowserError
				if !errors.As(err, &ube) {
					t.Fatalf("ParseBrowser(%q) err = %v, want UnsupportedBrowserError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBrowser(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseBrowser(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
