// Package pipeline orchestrates one download session: cookie export →
// download → metadata reduction → sidecar → media location.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bubroz/videograbber/internal/downloader"
	"github.com/bubroz/videograbber/internal/metadata"
	"github.com/bubroz/videograbber/internal/model"
	"github.com/bubroz/videograbber/internal/progress"
	"github.com/bubroz/videograbber/internal/util"
)

// Service runs download sessions. Each session is fully synchronous: one
// blocking tool invocation for cookie export, one for the download.
type Service struct {
	dlPath   string
	opts     model.CLIOptions
	runner   util.CmdRunner
	reporter progress.Reporter
	jobID    string
}

// Option configures a Service.
type Option func(*Service)

// WithDownloaderPath sets the yt-dlp binary path.
func WithDownloaderPath(p string) Option {
	return func(s *Service) {
		s.dlPath = p
	}
}

// WithCLIOptions sets the CLI options used for the session.
func WithCLIOptions(o model.CLIOptions) Option {
	return func(s *Service) {
		s.opts = o
	}
}

// WithRunner injects a custom command runner (useful for testing).
func WithRunner(r util.CmdRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// WithReporter attaches a progress reporter (used by TUI).
func WithReporter(rp progress.Reporter) Option {
	return func(s *Service) {
		s.reporter = rp
	}
}

// WithJobID sets the job ID associated with reporter events.
func WithJobID(id string) Option {
	return func(s *Service) {
		s.jobID = id
	}
}

// NewService constructs a new Service with the provided options.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, o := range opts {
		o(s)
	}
	if s.runner == nil {
		s.runner = util.NewDefaultRunner()
	}
	return s
}

// RunJob executes the full session for a single URL and returns a uniform
// DownloadResult. Every failure mode lands in the result (Success=false,
// Error set); the error return mirrors it for callers that branch on Go
// errors. It never prints; observers attach via the Reporter.
func (s *Service) RunJob(ctx context.Context, url string) (model.DownloadResult, error) {
	if s.dlPath == "" {
		return s.fail(errors.New("downloader path is required"))
	}

	// Scoped session workdir for cookie files; removal is best-effort on
	// every exit path.
	workdir, err := util.MakeTempWorkdir("session")
	if err != nil {
		return s.fail(fmt.Errorf("create temp dir: %w", err))
	}
	defer func() {
		_ = os.RemoveAll(workdir)
	}()

	if err := util.EnsureDir(s.opts.OutDir); err != nil {
		return s.fail(fmt.Errorf("create output dir: %w", err))
	}

	spec, err := downloader.CookieSpec(s.opts.Browser, s.opts.Profile)
	if err != nil {
		return s.fail(err)
	}
	s.update(progress.StageCookies, -1, fmt.Sprintf("Exporting cookies from %s", s.opts.Browser))
	s.log(fmt.Sprintf("Using browser at: %s", spec))

	cookiesFile, err := downloader.ExportCookies(ctx, url, downloader.CookieOptions{
		DownloaderPath: s.dlPath,
		Browser:        s.opts.Browser,
		Profile:        s.opts.Profile,
		WorkDir:        workdir,
		Verbose:        s.opts.Verbose,
		Runner:         s.runner,
	})
	if err != nil {
		return s.fail(err)
	}

	s.update(progress.StageDownloading, -1, "Starting download")
	stdout, err := downloader.Download(ctx, url, downloader.Options{
		DownloaderPath: s.dlPath,
		CookiesFile:    cookiesFile,
		OutDir:         s.opts.OutDir,
		Format:         s.opts.Format,
		Verbose:        s.opts.Verbose,
		Runner:         s.runner,
		StdoutLine: func(line string) {
			if u, ok := downloader.ParseProgress(line, s.jobID); ok && s.reporter != nil {
				s.reporter.Update(u)
			}
		},
	})
	if err != nil {
		return s.fail(err)
	}

	s.update(progress.StageMetadata, -1, "Processing metadata")
	meta, id, err := metadata.Reduce(stdout)
	if err != nil {
		return s.fail(err)
	}
	if _, err := metadata.WriteSidecar(s.opts.OutDir, meta, id); err != nil {
		return s.fail(err)
	}

	res := model.DownloadResult{Success: true, Metadata: &meta}
	if !s.opts.MetadataOnly {
		if path, ok := LocateMedia(s.opts.OutDir, id); ok {
			res.FilePath = path
		}
	}

	s.finish(res)
	return res, nil
}

// fail wraps err into a failed DownloadResult and reports it.
func (s *Service) fail(err error) (model.DownloadResult, error) {
	res := model.DownloadResult{Success: false, Error: err.Error()}
	if s.reporter != nil {
		s.reporter.Update(progress.Update{
			JobID:   s.jobID,
			Stage:   progress.StageError,
			Percent: -1,
			Message: err.Error(),
		})
		s.reporter.Result(progress.Result{JobID: s.jobID, Err: err})
	}
	return res, err
}

func (s *Service) finish(res model.DownloadResult) {
	if s.reporter == nil {
		return
	}
	msg := "Completed"
	var size int64
	if res.FilePath != "" {
		if st, err := os.Stat(res.FilePath); err == nil {
			size = st.Size()
		}
		msg = fmt.Sprintf("Saved: %s", res.FilePath)
	} else if s.opts.MetadataOnly {
		msg = "Metadata saved"
	}
	s.reporter.Update(progress.Update{
		JobID:   s.jobID,
		Stage:   progress.StageCompleted,
		Percent: 100,
		Message: msg,
	})
	s.reporter.Result(progress.Result{JobID: s.jobID, OutputPath: res.FilePath, Bytes: size})
}

func (s *Service) update(stage progress.Stage, percent float64, msg string) {
	if s.reporter == nil {
		return
	}
	s.reporter.Update(progress.Update{JobID: s.jobID, Stage: stage, Percent: percent, Message: msg})
}

func (s *Service) log(line string) {
	if s.reporter == nil {
		return
	}
	s.reporter.Log(progress.Log{JobID: s.jobID, Stream: progress.StreamStdout, Line: line})
}
