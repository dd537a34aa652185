package downloader

import (
	"context"
	"path/filepath"

	"github.com/bubroz/videograbber/internal/util"
)

// Options controls a download-session invocation.
type Options struct {
	DownloaderPath string
	CookiesFile    string
	OutDir         string
	Format         string // yt-dlp format spec, e.g. "bestvideo+bestaudio/best"
	Verbose        bool
	Runner         util.CmdRunner

	StdoutLine func(string) // optional per-line hook for progress parsing
}

// BuildDownloadArgs assembles the full yt-dlp argument list: output template
// embedding title and id, the requested format, JSON sidecar plus printed
// JSON summary, mkv merge target, and the network robustness flags. The URL
// goes last.
func BuildDownloadArgs(url string, opts Options) []string {
	args := []string{}
	if opts.CookiesFile != "" {
		args = append(args, "--cookies", opts.CookiesFile)
	}
	args = append(args,
		"-o", filepath.Join(opts.OutDir, "%(title)s [%(id)s].%(ext)s"),
		"-f", opts.Format,
		"--write-info-json",
		"--print-json",
		"--merge-output-format", "mkv", // supports any codec combination
		"--no-check-certificate",
		"--geo-bypass",
		"--no-playlist",
		"--no-cache-dir",
		"--force-ipv4",
		"--retries", "10",
		"--file-access-retries", "10",
		"--fragment-retries", "10",
		"--retry-sleep", "3",
		"--progress",
		"--newline",
		"--verbose",
		"--ignore-errors",
		"--no-warnings",
		"--prefer-insecure",
		url,
	)
	return args
}

// Download executes the download session synchronously, capturing stdout and
// stderr separately. A non-zero exit is returned as a ToolError carrying the
// captured stderr verbatim; the exit code is inspected explicitly, never
// inferred from the run error. On success the captured stdout (mixed
// progress text and JSON status lines) is returned for metadata reduction.
func Download(ctx context.Context, url string, opts Options) (string, error) {
	runner := opts.Runner
	if runner == nil {
		runner = util.NewDefaultRunner()
	}
	res, runErr := runner.Run(ctx, util.CmdSpec{
		Path:       opts.DownloaderPath,
		Args:       BuildDownloadArgs(url, opts),
		Verbose:    opts.Verbose,
		StdoutLine: opts.StdoutLine,
	})
	if res.Code == -1 && runErr != nil {
		return "", &CommandExecutionError{Err: runErr}
	}
	if res.Code != 0 {
		return "", &ToolError{ExitCode: res.Code, Stderr: string(res.Stderr)}
	}
	return string(res.Stdout), nil
}
