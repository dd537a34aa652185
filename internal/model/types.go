package model

// Browser identifies a supported cookie-source browser.
type Browser string

const (
	BrowserBrave   Browser = "brave"
	BrowserChrome  Browser = "chrome"
	BrowserFirefox Browser = "firefox"
)

// DefaultFormat is the yt-dlp format spec used when the user gives none.
const DefaultFormat = "bestvideo+bestaudio/best"

// CLIOptions holds user-configurable runtime options as parsed from flags.
type CLIOptions struct {
	OutDir       string
	Browser      Browser
	Profile      string // Display name or literal profile directory; empty = Default.
	Format       string // yt-dlp format spec.
	MetadataOnly bool   // Fetch and reduce metadata without locating a media file.
	DLBinary     string // Optional explicit path to yt-dlp.
	Verbose      bool

	NoUI bool // Disable TUI when true
}

// SimplifiedMetadata is the reduced projection of yt-dlp's full metadata
// object, as persisted to the .info.json sidecar. All fields default to
// "Unknown" when absent from the source; Resolution uses "?" for missing
// components. Never mutated after creation.
type SimplifiedMetadata struct {
	Title      string `json:"title"`
	Creator    string `json:"creator"`
	UploadDate string `json:"upload_date"`
	Duration   string `json:"duration"`
	Resolution string `json:"resolution"`
	ViewCount  any    `json:"view_count"`
	URL        string `json:"url"`
}

// DownloadResult is the outcome of one download attempt.
//
// Exactly one of {Metadata set with Success=true} or {Error set with
// Success=false} holds in the dominant cases. Metadata-only runs are the
// soft case: Success=true with no FilePath.
type DownloadResult struct {
	Success  bool
	FilePath string // Empty on metadata-only or not-yet-located outcomes.
	Error    string // Human-readable failure description; set iff Success is false.
	Metadata *SimplifiedMetadata
}
