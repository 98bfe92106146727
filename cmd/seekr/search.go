package seekr

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/seekr/seekr/internal/config"
	"github.com/seekr/seekr/internal/engine"
	"github.com/seekr/seekr/internal/progress"
	"github.com/seekr/seekr/internal/report"
	"github.com/seekr/seekr/internal/types"
	"github.com/seekr/seekr/internal/update"
)

var (
	flagPath       string
	flagMode       string
	flagExt        []string
	flagInclude    string
	flagExclude    string
	flagMaxBytes   int64
	flagTable      bool
	flagText       bool
	flagNoProgress bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [keywords...]",
		Short: "Search a directory tree for keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "root directory to search")
	cmd.Flags().StringVarP(&flagMode, "mode", "m", "", "search mode: content|filename|dirname (default content)")
	cmd.Flags().StringSliceVarP(&flagExt, "ext", "e", nil, "only search files with these extensions (content/filename modes)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this in content mode (0 = unlimited)")
	cmd.Flags().BoolVar(&flagTable, "table", false, "output in table format with borders (default)")
	cmd.Flags().BoolVar(&flagText, "text", false, "output in plain text columnar format")
	cmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "suppress the progress bar")
}

func runSearch(cmd *cobra.Command, args []string) error {
	abs, _ := filepath.Abs(flagPath)
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	modeStr := pickString(flagMode, lcfg.Mode, gcfg.Mode)
	if modeStr == "" {
		modeStr = "content"
	}
	mode, err := types.ParseMode(modeStr)
	if err != nil {
		return err
	}

	exts := flagExt
	if len(exts) == 0 {
		if s := pickString("", lcfg.Extensions, gcfg.Extensions); s != "" {
			for _, e := range strings.Split(s, ",") {
				if e = strings.TrimSpace(e); e != "" {
					exts = append(exts, e)
				}
			}
		}
	}

	cfg := engine.Config{
		Root:            abs,
		Mode:            mode,
		Keywords:        args,
		Extensions:      exts,
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		DefaultExcludes: flagDefaultExcludes || pickBool(false, lcfg.DefaultExcludes, gcfg.DefaultExcludes),
	}
	noColor := flagNoColor || pickBool(false, lcfg.NoColor, gcfg.NoColor)

	// Friendly banner before searching
	if !flagJSON {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'seekr --self-update' to upgrade\n", latest)
			}
		}
		if flagSelfUpdate {
			if err := selfUpdate(); err == nil {
				fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
				return nil
			}
		}
		fmt.Fprintf(os.Stderr, "Searching %s (%s mode, %d keywords)...\n", abs, mode, len(args))
	}

	// Progress bar on stderr, advisory only, terminals only.
	var tracker *progress.Tracker
	if !flagJSON && !flagNoProgress && term.IsTerminal(int(os.Stderr.Fd())) {
		if total, err := engine.CountTargets(cfg); err == nil && total > 0 {
			tracker = progress.NewTracker(total)
			cfg.Progress = func() {
				tracker.Advance()
				if tracker.Processed()%10 == 0 || tracker.Done() {
					tracker.Render(os.Stderr)
				}
			}
		}
	}

	res, err := engine.SearchWithStats(cfg)
	if err != nil {
		return fmt.Errorf("search error: %w", err)
	}
	if tracker != nil {
		tracker.Finish()
		tracker.Render(os.Stderr)
		fmt.Fprintln(os.Stderr)
	}
	if res.RootMissing {
		fmt.Fprintf(os.Stderr, "path not found: %s\n", abs)
	}

	matches := res.Matches
	if matches == nil {
		matches = []types.Match{} // no `null` in JSON
	}

	opts := report.PrintOptions{NoColor: noColor, Duration: res.Duration, Scanned: res.Scanned}
	switch {
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(matches); err != nil {
			return err
		}
	case flagText:
		report.PrintText(os.Stdout, matches, opts)
	case flagTable:
		report.PrintTable(os.Stdout, matches, opts)
	default:
		// Table is the default format; config can opt into plain text.
		if tbl := pickBool(flagTable, lcfg.Table, gcfg.Table); tbl || lcfg.Table == nil && gcfg.Table == nil {
			report.PrintTable(os.Stdout, matches, opts)
		} else {
			report.PrintText(os.Stdout, matches, opts)
		}
	}
	return nil
}
