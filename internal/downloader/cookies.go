// Package downloader drives yt-dlp: cookie export, the download session
// itself, format listing, and progress-line parsing.
package downloader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bubroz/videograbber/internal/browser"
	"github.com/bubroz/videograbber/internal/model"
	"github.com/bubroz/videograbber/internal/util"
)

// UserAgent is the fixed desktop user-agent presented during cookie export.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// CookieOptions configures a cookie-export pass.
type CookieOptions struct {
	DownloaderPath string
	Browser        model.Browser
	Profile        string // display name or directory; empty = Default
	WorkDir        string // session temp dir the cookie file is written into
	Verbose        bool
	Runner         util.CmdRunner
}

// ExportCookies runs yt-dlp in cookie-export-only mode against url: the
// resolved browser profile's cookies are validated against the target site
// (--skip-download) and written to a file inside the session work dir.
// Success requires both a zero exit and a non-empty cookie file.
func ExportCookies(ctx context.Context, url string, opts CookieOptions) (string, error) {
	spec, err := browser.ResolveSpec(opts.Browser, opts.Profile)
	if err != nil {
		return "", err
	}

	cookiesPath := filepath.Join(opts.WorkDir, fmt.Sprintf("cookies_%s.txt", opts.Browser))
	args := []string{
		"--cookies-from-browser", spec,
		"--user-agent", UserAgent,
		"--cookies", cookiesPath,
		"--skip-download",
		url,
	}

	runner := opts.Runner
	if runner == nil {
		runner = util.NewDefaultRunner()
	}
	res, runErr := runner.Run(ctx, util.CmdSpec{
		Path:    opts.DownloaderPath,
		Args:    args,
		Verbose: opts.Verbose,
	})
	if res.Code == -1 && runErr != nil {
		return "", &CommandExecutionError{Err: runErr}
	}
	if res.Code != 0 {
		stderr := string(res.Stderr)
		if strings.Contains(stderr, "could not find") {
			return "", &BrowserNotAccessibleError{Browser: string(opts.Browser), Spec: spec}
		}
		return "", &CookieExportError{Stderr: stderr}
	}
	if !util.FileNonEmpty(cookiesPath) {
		return "", &CookieExportError{Stderr: "cookies file was not created"}
	}
	return cookiesPath, nil
}

// CookieSpec resolves and returns the browser specification string without
// running the export, for display purposes.
func CookieSpec(b model.Browser, profile string) (string, error) {
	return browser.ResolveSpec(b, profile)
}
