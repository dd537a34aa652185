package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/bubroz/videograbber/internal/browser"
	"github.com/bubroz/videograbber/internal/model"
	"github.com/bubroz/videograbber/internal/pipeline"
	"github.com/bubroz/videograbber/internal/progress"
	"github.com/bubroz/videograbber/internal/ui"
	"github.com/bubroz/videograbber/internal/util"
	"github.com/bubroz/videograbber/internal/util/deps"
	"github.com/bubroz/videograbber/internal/util/format"
)

// assembleOptions collects CLI options with flag > env/config > default
// precedence (bound keys come through viper).
func assembleOptions(cmd *cobra.Command) (model.CLIOptions, error) {
	b, err := browser.ParseBrowser(stringOpt(cmd, "browser", "browser", string(model.BrowserBrave)))
	if err != nil {
		return model.CLIOptions{}, err
	}

	profile, _ := cmd.Flags().GetString("profile")
	formatSpec, _ := cmd.Flags().GetString("format")
	if formatSpec == "" {
		formatSpec = model.DefaultFormat
	}
	metadataOnly, _ := cmd.Flags().GetBool("metadata-only")
	noUI, _ := cmd.Flags().GetBool("no-ui")

	outDir := stringOpt(cmd, "out-dir", "out_dir", "downloads")

	return model.CLIOptions{
		OutDir:       filepath.Clean(outDir),
		Browser:      b,
		Profile:      profile,
		Format:       formatSpec,
		MetadataOnly: metadataOnly,
		DLBinary:     stringOpt(cmd, "dl-binary", "dl_binary", ""),
		Verbose:      boolOpt(cmd, "verbose", "verbose"),
		NoUI:         noUI,
	}, nil
}

func runDownload(cmd *cobra.Command, rawURL string, forceTUI bool) error {
	opts, err := assembleOptions(cmd)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	url, err := util.ValidateURL(rawURL)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	// TUI path (forced or auto if TTY and not disabled)
	useTUI := forceTUI || (!opts.NoUI && isTerminal())
	if useTUI {
		if err := ui.Run(cmd.Context(), url, opts); err != nil {
			return &ExitError{Code: ExitFailure, Err: err}
		}
		return nil
	}

	dlPath, err := deps.FindDownloader(opts.DLBinary)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	svc := pipeline.NewService(
		pipeline.WithDownloaderPath(dlPath),
		pipeline.WithCLIOptions(opts),
		pipeline.WithReporter(plainReporter{verbose: opts.Verbose}),
	)
	res, _ := svc.RunJob(cmd.Context(), url)
	if !res.Success {
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("download failed: %s", res.Error)}
	}

	switch {
	case res.FilePath != "":
		line := "File location: " + res.FilePath
		if st, serr := os.Stat(res.FilePath); serr == nil {
			line += " (" + format.HumanizeBytes(st.Size()) + ")"
		}
		fmt.Println(line)
	case opts.MetadataOnly:
		fmt.Println("Metadata saved to", opts.OutDir)
	default:
		fmt.Println("Download finished; no media file located in", opts.OutDir)
	}
	if res.Metadata != nil {
		fmt.Printf("Creator: %s\n", res.Metadata.Creator)
	}
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// plainReporter echoes pipeline events as plain text for non-UI runs.
type plainReporter struct {
	verbose bool
}

func (r plainReporter) Update(u progress.Update) {
	if u.Stage == progress.StageError || u.Stage == progress.StageCompleted {
		return // final outcome is printed once by the command itself
	}
	if u.Stage == progress.StageDownloading && u.Percent >= 0 {
		return // the tool's own --progress lines cover this in verbose mode
	}
	if u.Message != "" {
		fmt.Println(u.Message)
	}
}

func (r plainReporter) Log(l progress.Log) {
	fmt.Println(l.Line)
}

func (r plainReporter) Result(progress.Result) {}

// Helpers

// stringOpt resolves a string option: explicit flag wins, then the viper key
// (env/config), then the default.
func stringOpt(cmd *cobra.Command, flag, viperKey, def string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	if f := cmd.InheritedFlags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	return def
}

func boolOpt(cmd *cobra.Command, flag, viperKey string) bool {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String() == "true"
	}
	if f := cmd.InheritedFlags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String() == "true"
	}
	return viper.GetBool(viperKey)
}
