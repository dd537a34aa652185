package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bubroz/videograbber/internal/model"
	"github.com/bubroz/videograbber/internal/pipeline"
	"github.com/bubroz/videograbber/internal/progress"
	"github.com/bubroz/videograbber/internal/util/deps"
)

// Model drives the TUI for one download session. The session itself runs in
// a single worker goroutine; only UI events flow through the tea loop.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	depsChecked    bool
	depsErr        error
	downloaderPath string
	started        bool

	url  string
	opts model.CLIOptions
	job  *jobState

	width, height int
	styles        Styles

	// Internal event channel used by reporter to feed tea messages
	eventCh chan tea.Msg
}

func NewModel(ctx context.Context, url string, opts model.CLIOptions) Model {
	c, cancel := context.WithCancel(ctx)
	sty := defaultStyles()
	js := newJobState("job-0", url, sty)

	return Model{
		ctx:     c,
		cancel:  cancel,
		url:     url,
		opts:    opts,
		job:     &js,
		styles:  sty,
		eventCh: make(chan tea.Msg, 256),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.job.spinner.Tick,
		m.listenEventsCmd(),
		m.checkDepsCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case depsCheckedMsg:
		m.depsChecked = true
		m.depsErr = msg.Err
		m.downloaderPath = msg.DownloaderPath
		if m.depsErr != nil {
			m.job.stage = progress.StageError
			m.job.status = fmt.Sprintf("Dependency error: %v", m.depsErr)
			m.job.err = m.depsErr
			m.job.done = true
			return m, tea.Quit
		}
		if !m.started {
			m.started = true
			go m.runJob()
		}

	case jobUpdateMsg:
		u := msg.U
		m.job.stage = u.Stage
		m.job.percent = u.Percent
		if u.Message != "" {
			m.job.status = u.Message
		}
	case jobLogMsg:
		line := strings.TrimRight(msg.L.Line, "\r\n")
		if len(m.job.logsRing) > 100 {
			m.job.logsRing = m.job.logsRing[1:]
		}
		m.job.logsRing = append(m.job.logsRing, line)
	case jobResultMsg:
		r := msg.R
		m.job.done = true
		m.job.err = r.Err
		if r.Err == nil {
			m.job.stage = progress.StageCompleted
			m.job.percent = 100
			m.job.outputPath = r.OutputPath
			m.job.bytes = r.Bytes
		} else {
			m.job.stage = progress.StageError
			m.job.status = r.Err.Error()
			m.job.percent = -1
		}
		return m, tea.Quit
	case allDoneMsg:
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	var c tea.Cmd
	m.job.spinner, c = m.job.spinner.Update(msg)
	if c != nil {
		cmds = append(cmds, c)
	}
	cmds = append(cmds, m.listenEventsCmd())
	return m, tea.Batch(cmds...)
}

func (m Model) listenEventsCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return allDoneMsg{}
		case msg := <-m.eventCh:
			return msg
		}
	}
}

func (m Model) checkDepsCmd() tea.Cmd {
	return func() tea.Msg {
		dl, err := deps.FindDownloader(m.opts.DLBinary)
		if err != nil {
			return depsCheckedMsg{Err: err}
		}
		return depsCheckedMsg{DownloaderPath: dl}
	}
}

func (m Model) runJob() {
	rep := teaReporter{ch: m.eventCh}
	svc := pipeline.NewService(
		pipeline.WithDownloaderPath(m.downloaderPath),
		pipeline.WithCLIOptions(m.opts),
		pipeline.WithReporter(rep),
		pipeline.WithJobID(m.job.id),
	)
	// The service emits the final Result through the reporter; the returned
	// values are already reflected in UI state.
	_, _ = svc.RunJob(m.ctx, m.url)
}

type teaReporter struct {
	ch chan tea.Msg
}

func (r teaReporter) Update(u progress.Update) {
	// Block on completion messages to ensure they're delivered
	if u.Stage == progress.StageCompleted || u.Stage == progress.StageError {
		r.ch <- jobUpdateMsg{U: u}
		return
	}
	select {
	case r.ch <- jobUpdateMsg{U: u}:
	default:
	}
}

func (r teaReporter) Log(l progress.Log) {
	select {
	case r.ch <- jobLogMsg{L: l}:
	default:
	}
}

func (r teaReporter) Result(res progress.Result) {
	// Always block on Result messages - they're critical
	r.ch <- jobResultMsg{R: res}
}
