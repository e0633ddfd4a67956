package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/mj1618/get-window-id/internal/locate"
	"github.com/mj1618/get-window-id/internal/logging"
	"github.com/mj1618/get-window-id/internal/model"
	"github.com/mj1618/get-window-id/internal/output"
	"github.com/mj1618/get-window-id/internal/platform"
	"github.com/mj1618/get-window-id/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// notFoundMessage is written to stderr when no window matches.
const notFoundMessage = "Window not found"

// boundsArg selects bounds output when it appears verbatim anywhere in argv.
// It is reserved: it never serves as the value of another flag.
const boundsArg = "--bounds"

// Mode selects how a located window is printed.
type Mode int

const (
	ModeID Mode = iota
	ModeBounds
	ModeList
)

// newRootCmd builds the root command for argv, the unparsed arguments.
func newRootCmd(stdout, stderr io.Writer, argv []string) *cobra.Command {
	boundsRequested := slices.Contains(argv, boundsArg)
	cmd := &cobra.Command{
		Use:   "get-window-id",
		Short: "Print the window ID of an on-screen Chrome or Chromium window",
		Long: "Query the macOS window server for on-screen windows and print the ID of the first\n" +
			"normal application window owned by Chrome or Chromium. With --bounds, print a\n" +
			"JSON record of its ID and screen bounds instead.",
		Example: "  get-window-id\n" +
			"  get-window-id --bounds\n" +
			"  get-window-id --match \"Brave Browser\" --bounds",
		Args: cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, boundsRequested)
		},
	}
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().Bool("bounds", false, "Print {\"id\", \"x\", \"y\", \"width\", \"height\"} as JSON instead of the bare ID (exact argument only; --bounds=true is ignored)")
	cmd.Flags().StringSlice("match", locate.DefaultFragments, "Owner-name fragments to match (case-sensitive substring)")
	cmd.Flags().Bool("list", false, "Print every matching window instead of the first")
	cmd.Flags().String("format", string(output.FormatYAML), "Output format for --list: yaml, json")
	cmd.Flags().BoolP("verbose", "v", false, "Write debug logs to stderr")
	return cmd
}

// Run executes the command with args and returns the process exit status.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr, args)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, locate.ErrWindowNotFound) {
			fmt.Fprintln(stderr, notFoundMessage)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// modeFor picks the output mode. Bounds mode depends only on whether the
// literal --bounds was present in argv, not on how pflag parsed it.
func modeFor(cmd *cobra.Command, boundsRequested bool) Mode {
	if list, _ := cmd.Flags().GetBool("list"); list {
		return ModeList
	}
	if boundsRequested {
		return ModeBounds
	}
	return ModeID
}

// withoutBoundsArg drops --bounds tokens that pflag consumed as a flag value,
// e.g. "--match --bounds". If nothing else was given, fallback is used.
func withoutBoundsArg(values, fallback []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != boundsArg {
			out = append(out, v)
		}
	}
	if len(out) == 0 && len(values) > 0 {
		return fallback
	}
	return out
}

func runRoot(cmd *cobra.Command, boundsRequested bool) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	fragments, _ := cmd.Flags().GetStringSlice("match")
	formatFlag, _ := cmd.Flags().GetString("format")

	fragments = withoutBoundsArg(fragments, locate.DefaultFragments)
	if formatFlag == boundsArg {
		formatFlag = string(output.FormatYAML)
	}

	log := logging.New(cmd.ErrOrStderr(),
		logging.WithLevel(logging.Level(verbose)),
		logging.WithConsole(),
		logging.WithNoColor(),
	)
	mode := modeFor(cmd, boundsRequested)

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.WindowLister == nil {
		return fmt.Errorf("window listing not available on this platform")
	}
	lister := loggingLister{next: provider.WindowLister, log: log}

	log.Debug().Strs("match", fragments).Int("mode", int(mode)).Msg("locating window")

	stdout := cmd.OutOrStdout()
	if mode == ModeList {
		format, err := output.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		windows, err := locate.FindAll(cmd.Context(), lister, fragments)
		if err != nil {
			return err
		}
		log.Debug().Int("matches", len(windows)).Msg("filtered windows")
		return output.Print(stdout, format, windows)
	}

	win, err := locate.Find(cmd.Context(), lister, fragments)
	if err != nil {
		log.Debug().Err(err).Msg("no window selected")
		return err
	}
	log.Debug().Str("app", win.App).Int("id", win.ID).Int("pid", win.PID).Msg("window matched")

	if mode == ModeBounds {
		return output.PrintBounds(stdout, win)
	}
	return output.PrintID(stdout, win)
}

// loggingLister records each window server query at debug level.
type loggingLister struct {
	next platform.WindowLister
	log  zerolog.Logger
}

func (l loggingLister) ListOnScreenWindows() ([]model.Window, error) {
	start := time.Now()
	windows, err := l.next.ListOnScreenWindows()
	if err != nil {
		l.log.Debug().Err(err).Msg("window list query failed")
		return nil, err
	}
	l.log.Debug().Int("count", len(windows)).Dur("took", time.Since(start)).Msg("listed on-screen windows")
	return windows, nil
}
