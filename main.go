package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Discovery
	scanAll  bool
	noIgnore bool

	// Filtering
	extFlags      []string
	noExtFilter   bool
	includeHidden bool
	excludeFlags  []string
	binaryPolicy  string

	// Report
	topN            int
	copyToClipboard bool

	// Interactive Mode
	interactiveMode bool
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "tokencount [PATH]",
	Short: "Back-of-the-envelope token estimate for a git repo (or any directory).",
	Long: `tokencount estimates how many language-model tokens the text content of
a repository represents, without running a tokenizer: it sums the byte
sizes of relevant files and converts bytes to a token range using fixed
divisors (low = bytes/4, high = bytes/3).

By default it counts git-tracked files only, filters to text-like
extensions, and skips probable binaries via a quick null-byte sniff.
PATH may also be a Git URL (.git suffix or git@ prefix); the repository
is then cloned into a temporary directory and estimated from there.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		target := "."
		if len(args) > 0 {
			target = args[0]
		} else if interactiveMode {
			picked, err := pickRootDirectory()
			if err != nil {
				return fmt.Errorf("interactive mode: %w", err)
			}
			if picked == "" {
				// User aborted the picker.
				return nil
			}
			target = picked
		}

		// A Git URL argument is cloned into a temp dir and estimated there.
		if isGitURL(target) {
			tempDir, err := cloneGitRepo(target)
			if err != nil {
				return err
			}
			defer os.RemoveAll(tempDir)
			target = tempDir
		}

		opts, err := resolveOptions(target)
		if err != nil {
			return err
		}

		if copyToClipboard {
			var builder strings.Builder
			if err := runEstimate(opts, &builder, os.Stderr); err != nil {
				return err
			}
			if err := clipboard.WriteAll(builder.String()); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not write to clipboard: %v\n", err)
				fmt.Print(builder.String())
				return nil
			}
			fmt.Fprintln(os.Stderr, "Report copied to clipboard.")
			return nil
		}
		return runEstimate(opts, os.Stdout, os.Stderr)
	},
}

func init() {
	// Discovery
	rootCmd.Flags().BoolVar(&scanAll, "all", false, "Scan all files under PATH (not just git-tracked)")
	viper.BindPFlag("all", rootCmd.Flags().Lookup("all"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect .gitignore during a full scan")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))

	// Filtering
	rootCmd.Flags().StringArrayVar(&extFlags, "ext", nil, "Include only these extensions (repeatable), e.g. --ext .py --ext .md")
	viper.BindPFlag("ext", rootCmd.Flags().Lookup("ext"))
	rootCmd.Flags().BoolVar(&noExtFilter, "no-ext-filter", false, "Do not filter by extension (danger: includes lots of stuff)")
	viper.BindPFlag("no_ext_filter", rootCmd.Flags().Lookup("no-ext-filter"))
	rootCmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "Include hidden files/dirs (dotfiles)")
	viper.BindPFlag("include_hidden", rootCmd.Flags().Lookup("include-hidden"))
	rootCmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "Glob or substring pattern(s) to exclude, repeatable")
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	rootCmd.Flags().StringVar(&binaryPolicy, "binary", binarySkip, "Binary handling: skip or include")
	viper.BindPFlag("binary", rootCmd.Flags().Lookup("binary"))

	// Report
	rootCmd.Flags().IntVar(&topN, "top", 10, "Show top N largest files")
	viper.BindPFlag("top", rootCmd.Flags().Lookup("top"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the report to the clipboard instead of printing it")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))

	// Interactive Mode
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the root directory with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	viper.SetDefault("binary", binarySkip)
	viper.SetDefault("top", 10)
}

// resolveOptions validates the root path and freezes the flag values into
// an Options value. Flags are the only configuration source: no config
// file and no environment variables.
func resolveOptions(path string) (Options, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return Options{}, fmt.Errorf("resolving root %s: %w", path, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return Options{}, fmt.Errorf("invalid root %s: %w", root, err)
	}
	if !info.IsDir() {
		return Options{}, fmt.Errorf("root %s is not a directory", root)
	}

	policy := viper.GetString("binary")
	if policy != binarySkip && policy != binaryInclude {
		return Options{}, fmt.Errorf("invalid --binary value %q: use %q or %q", policy, binarySkip, binaryInclude)
	}

	exts := make(map[string]struct{})
	if !viper.GetBool("no_ext_filter") {
		list := extFlags
		if len(list) == 0 {
			list = defaultExtensions
		}
		for _, e := range list {
			e = strings.ToLower(e)
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			exts[e] = struct{}{}
		}
	}

	return Options{
		Root:          root,
		ScanAll:       viper.GetBool("all"),
		Exts:          exts,
		IncludeHidden: viper.GetBool("include_hidden"),
		Excludes:      excludeFlags,
		BinaryPolicy:  policy,
		TopN:          viper.GetInt("top"),
		NoIgnore:      viper.GetBool("no_ignore"),
	}, nil
}

// runEstimate runs the discovery -> filter -> aggregate -> report pipeline
// once. The report goes to out; warnings go to errw.
func runEstimate(opts Options, out, errw io.Writer) error {
	var paths []string
	if opts.ScanAll {
		paths = walkAllFiles(opts.Root, opts.NoIgnore, errw)
	} else {
		var err error
		paths, err = gitTrackedFiles(opts.Root)
		if err != nil {
			fmt.Fprintf(errw, "warning: %v\n", err)
			fmt.Fprintln(errw, "falling back to --all scan.")
			paths = walkAllFiles(opts.Root, opts.NoIgnore, errw)
		}
	}

	records := filterFiles(paths, opts)
	rep := aggregate(opts.Root, records, opts.TopN)
	renderReport(out, rep)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
