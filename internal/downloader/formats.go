package downloader

import (
	"context"
	"fmt"

	"github.com/bubroz/videograbber/internal/util"
)

// ListFormats asks yt-dlp for every available format of url and returns the
// raw listing for display.
func ListFormats(ctx context.Context, dlPath, url string, runner util.CmdRunner) (string, error) {
	if runner == nil {
		runner = util.NewDefaultRunner()
	}
	res, runErr := runner.Run(ctx, util.CmdSpec{
		Path: dlPath,
		Args: []string{"--list-formats", "--no-warnings", url},
	})
	if res.Code == -1 && runErr != nil {
		return "", &CommandExecutionError{Err: runErr}
	}
	if res.Code != 0 {
		return "", fmt.Errorf("failed to list formats: %s", string(res.Stderr))
	}
	return string(res.Stdout), nil
}
