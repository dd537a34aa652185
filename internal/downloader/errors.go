package downloader

import (
	"fmt"
	"strings"
)

// CommandExecutionError means the external tool could not be spawned at all
// (as opposed to running and exiting non-zero).
type CommandExecutionError struct {
	Err error
}

func (e *CommandExecutionError) Error() string {
	return fmt.Sprintf("command execution failed: %v", e.Err)
}

func (e *CommandExecutionError) Unwrap() error { return e.Err }

// CookieExportError reports a failed cookie-export pass, carrying the tool's
// captured error stream.
type CookieExportError struct {
	Stderr string
}

func (e *CookieExportError) Error() string {
	return fmt.Sprintf("failed to export cookies: %s", strings.TrimSpace(e.Stderr))
}

// BrowserNotAccessibleError is the actionable special case of a cookie
// export failing because the tool could not find the browser's cookie store
// at the profile path used.
type BrowserNotAccessibleError struct {
	Browser string
	Spec    string
}

func (e *BrowserNotAccessibleError) Error() string {
	return fmt.Sprintf(
		"could not find browser cookies. Please make sure:\n"+
			"1. You have %s installed\n"+
			"2. You're logged into the site you're trying to download from\n"+
			"3. Your browser profile path is correct: %s\n"+
			"4. Common profile names are: 'Default', 'Profile 1', 'Profile 2'",
		e.Browser, e.Spec)
}

// ToolError reports a non-zero exit of the download tool, with its stderr
// attached verbatim.
type ToolError struct {
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return e.Stderr
}
