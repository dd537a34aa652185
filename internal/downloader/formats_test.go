package downloader

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bubroz/videograbber/internal/util"
)

func TestListFormats(t *testing.T) {
	listing := "ID  EXT   RESOLUTION\n137 mp4   1920x1080\n"
	runner := &fakeRunner{results: []fakeResult{{
		res: util.CmdResult{Code: 0, Stdout: []byte(listing)},
	}}}

	got, err := ListFormats(context.Background(), "yt-dlp", "https://example.com/v/1", runner)
	if err != nil {
		t.Fatalf("ListFormats: %v", err)
	}
	if got != listing {
		t.Errorf("listing = %q", got)
	}

	args := runner.specs[0].Args
	if !hasArg(args, "--list-formats") || !hasArg(args, "--no-warnings") {
		t.Errorf("args = %v", args)
	}
	if args[len(args)-1] != "https://example.com/v/1" {
		t.Errorf("URL is not the final argument: %v", args)
	}
}

func TestListFormatsFailure(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{
		res: util.CmdResult{Code: 1, Stderr: []byte("ERROR: unsupported URL\n")},
		err: errors.New("command failed (exit 1)"),
	}}}

	_, err := ListFormats(context.Background(), "yt-dlp", "https://example.com/bad", runner)
	if err == nil || !strings.Contains(err.Error(), "unsupported URL") {
		t.Errorf("err = %v, want tool stderr surfaced", err)
	}
}
