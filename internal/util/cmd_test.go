package util

import "testing"

func TestShellQuote(t *testing.T) {
	tests := []struct {
		name string
		path string
		args []string
		want string
	}{
		{
			name: "plain args untouched",
			path: "yt-dlp",
			args: []string{"--skip-download", "https://example.com/v/1"},
			want: "yt-dlp --skip-download https://example.com/v/1",
		},
		{
			name: "spaces quoted",
			path: "/usr/local/bin/yt-dlp",
			args: []string{"-o", "downloads/%(title)s [%(id)s].%(ext)s"},
			want: "/usr/local/bin/yt-dlp -o 'downloads/%(title)s [%(id)s].%(ext)s'",
		},
		{
			name: "single quotes escaped",
			path: "echo",
			args: []string{"it's"},
			want: `echo 'it'\''s'`,
		},
		{
			name: "empty arg kept visible",
			path: "echo",
			args: []string{""},
			want: "echo ''",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shellQuote(tt.path, tt.args); got != tt.want {
				t.Errorf("shellQuote = %q, want %q", got, tt.want)
			}
		})
	}
}
