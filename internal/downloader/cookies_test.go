package downloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bubroz/videograbber/internal/model"
	"github.com/bubroz/videograbber/internal/util"
)

// fakeRunner records the specs it was asked to run and plays back canned
// results, optionally running a side effect first (creating output files the
// code under test expects the tool to leave behind).
type fakeRunner struct {
	specs   []util.CmdSpec
	results []fakeResult
}

type fakeResult struct {
	res    util.CmdResult
	err    error
	effect func(spec util.CmdSpec)
}

func (f *fakeRunner) Run(_ context.Context, spec util.CmdSpec) (util.CmdResult, error) {
	i := len(f.specs)
	f.specs = append(f.specs, spec)
	if i >= len(f.results) {
		return util.CmdResult{Code: 0}, nil
	}
	r := f.results[i]
	if r.effect != nil {
		r.effect(spec)
	}
	return r.res, r.err
}

func argValue(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("flag %s not found in args %v", flag, args)
	return ""
}

func hasArg(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func TestExportCookies(t *testing.T) {
	workDir := t.TempDir()
	runner := &fakeRunner{results: []fakeResult{{
		res: util.CmdResult{Code: 0},
		effect: func(spec util.CmdSpec) {
			path := argValue(t, spec.Args, "--cookies")
			if err := os.WriteFile(path, []byte("# Netscape HTTP Cookie File\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		},
	}}}

	path, err := ExportCookies(context.Background(), "https://example.com/v/1", CookieOptions{
		DownloaderPath: "/usr/local/bin/yt-dlp",
		Browser:        model.BrowserBrave,
		WorkDir:        workDir,
		Runner:         runner,
	})
	if err != nil {
		t.Fatalf("ExportCookies: %v", err)
	}
	if path != filepath.Join(workDir, "cookies_brave.txt") {
		t.Errorf("cookie path = %q", path)
	}

	if len(runner.specs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runner.specs))
	}
	args := runner.specs[0].Args
	spec := argValue(t, args, "--cookies-from-browser")
	if !strings.HasPrefix(spec, "brave:") || !strings.HasSuffix(spec, "/Default") {
		t.Errorf("browser spec = %q", spec)
	}
	if got := argValue(t, args, "--user-agent"); got != UserAgent {
		t.Errorf("user agent = %q", got)
	}
	if !hasArg(args, "--skip-download") {
		t.Error("missing --skip-download")
	}
	if args[len(args)-1] != "https://example.com/v/1" {
		t.Errorf("URL is not the final argument: %v", args)
	}
}

func TestExportCookiesBrowserNotAccessible(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{
		res: util.CmdResult{Code: 1, Stderr: []byte("ERROR: could not find brave cookies database\n")},
		err: errors.New("command failed (exit 1)"),
	}}}

	_, err := ExportCookies(context.Background(), "https://example.com/v/1", CookieOptions{
		DownloaderPath: "yt-dlp",
		Browser:        model.BrowserBrave,
		WorkDir:        t.TempDir(),
		Runner:         runner,
	})
	var bna *BrowserNotAccessibleError
	if !errors.As(err, &bna) {
		t.Fatalf("err = %v, want BrowserNotAccessibleError", err)
	}
	if !strings.Contains(err.Error(), "brave") {
		t.Errorf("error does not name the browser: %v", err)
	}
}

func TestExportCookiesNonzeroExit(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{
		res: util.CmdResult{Code: 1, Stderr: []byte("ERROR: network unreachable\n")},
		err: errors.New("command failed (exit 1)"),
	}}}

	_, err := ExportCookies(context.Background(), "https://example.com/v/1", CookieOptions{
		DownloaderPath: "yt-dlp",
		Browser:        model.BrowserChrome,
		WorkDir:        t.TempDir(),
		Runner:         runner,
	})
	var cee *CookieExportError
	if !errors.As(err, &cee) {
		t.Fatalf("err = %v, want CookieExportError", err)
	}
	if !strings.Contains(cee.Stderr, "network unreachable") {
		t.Errorf("stderr not carried: %q", cee.Stderr)
	}
}

func TestExportCookiesEmptyCookieFile(t *testing.T) {
	// Zero exit but no cookie file on disk still counts as a failed export.
	runner := &fakeRunner{results: []fakeResult{{res: util.CmdResult{Code: 0}}}}

	_, err := ExportCookies(context.Background(), "https://example.com/v/1", CookieOptions{
		DownloaderPath: "yt-dlp",
		Browser:        model.BrowserBrave,
		WorkDir:        t.TempDir(),
		Runner:         runner,
	})
	var cee *CookieExportError
	if !errors.As(err, &cee) {
		t.Fatalf("err = %v, want CookieExportError", err)
	}
}

func TestExportCookiesSpawnFailure(t *testing.T) {
	spawnErr := errors.New("exec: \"yt-dlp\": executable file not found in $PATH")
	runner := &fakeRunner{results: []fakeResult{{
		res: util.CmdResult{Code: -1, Err: spawnErr},
		err: spawnErr,
	}}}

	_, err := ExportCookies(context.Background(), "https://example.com/v/1", CookieOptions{
		DownloaderPath: "yt-dlp",
		Browser:        model.BrowserBrave,
		WorkDir:        t.TempDir(),
		Runner:         runner,
	})
	var cex *CommandExecutionError
	if !errors.As(err, &cex) {
		t.Fatalf("err = %v, want CommandExecutionError", err)
	}
	if !errors.Is(err, spawnErr) {
		t.Errorf("spawn error not wrapped: %v", err)
	}
}
