package ui

import (
	"fmt"
	"strings"

	"github.com/bubroz/videograbber/internal/progress"
	"github.com/bubroz/videograbber/internal/util/format"
)

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("videograbber")
	sub := m.styles.Subtitle.Render("q: quit")
	return title + "\n" + sub
}

func (m Model) viewJob(js *jobState) string {
	stageStyle := m.styles.JobInfo
	switch js.stage {
	case progress.StageCookies:
		stageStyle = m.styles.StageCookies
	case progress.StageDownloading:
		stageStyle = m.styles.StageDL
	case progress.StageMetadata:
		stageStyle = m.styles.StageMeta
	case progress.StageCompleted:
		stageStyle = m.styles.Success
	case progress.StageError:
		stageStyle = m.styles.Error
	}

	left := m.styles.JobTitle.Render(truncate(js.url, 48))
	stage := stageStyle.Render(string(js.stage))

	var right string
	if js.percent >= 0 && js.percent <= 100 {
		right = fmt.Sprintf("%s %5.1f%%", js.bar.ViewAs(js.percent/100.0), js.percent)
	} else if js.done && js.err == nil {
		right = m.styles.Success.Render("✓ done")
	} else if js.err != nil {
		right = m.styles.Error.Render("✗ error")
	} else {
		right = m.styles.Spinner.Render(js.spinner.View()) + " " + m.styles.Faint.Render("working")
	}

	line1 := fmt.Sprintf("%s  %s", left, stage)
	line2 := m.styles.JobInfo.Render(js.status)
	return m.styles.Box.Render(line1 + "\n" + right + "\n" + line2)
}

func (m Model) viewSummary() string {
	if !m.job.done || m.job.err != nil || m.job.outputPath == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("✓ Saved:"))
	b.WriteString("\n")
	line := "  • " + m.job.outputPath
	if m.job.bytes > 0 {
		line += " (" + format.HumanizeBytes(m.job.bytes) + ")"
	}
	b.WriteString(m.styles.Success.Render(line))
	b.WriteString("\n")
	return b.String()
}

func (m Model) View() string {
	body := m.viewHeader() + "\n\n" + m.viewJob(m.job) + "\n"
	if summary := m.viewSummary(); summary != "" {
		body += summary
	}
	return body
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if n <= 0 || len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
