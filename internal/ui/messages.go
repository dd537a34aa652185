package ui

import "github.com/bubroz/videograbber/internal/progress"

type depsCheckedMsg struct {
	DownloaderPath string
	Err            error
}

type jobUpdateMsg struct {
	U progress.Update
}

type jobLogMsg struct {
	L progress.Log
}

type jobResultMsg struct {
	R progress.Result
}

type allDoneMsg struct{}
