package browser

import (
	"fmt"
	"strings"
)

// UnsupportedPlatformError indicates the operating system is not one of the
// three known identifiers.
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported operating system: %s", e.OS)
}

// UnsupportedBrowserError indicates the browser is not one of the three
// supported families.
type UnsupportedBrowserError struct {
	Browser string
}

func (e *UnsupportedBrowserError) Error() string {
	return fmt.Sprintf("unsupported browser: %s (supported: brave, chrome, firefox)", e.Browser)
}

// ProfileNotFoundError reports a profile identifier that matched neither a
// display name in the catalog nor a directory on disk. It carries the full
// catalog listing so the operator can pick a valid one.
type ProfileNotFoundError struct {
	Profile string
	Known   []Entry
}

func (e *ProfileNotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "profile %q not found. Available profiles:", e.Profile)
	for _, p := range e.Known {
		fmt.Fprintf(&b, "\n- Display name: %q (Directory: %q)", p.DisplayName, p.Dir)
	}
	return b.String()
}
