// potranslator — translate gettext PO files while preserving formatting
// placeholders (e.g. {term}, %(listing_id)s) and finalizing translations
// (no fuzzy tags left on freshly translated entries).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/amirreza225/potranslator/catalog"
	"github.com/amirreza225/potranslator/config"
	"github.com/amirreza225/potranslator/engine"
	"github.com/amirreza225/potranslator/i18n"
	"github.com/amirreza225/potranslator/translate"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

func newRootCmd() *cobra.Command {
	var (
		srcLang  string
		destLang string
		delay    time.Duration
		verbose  bool
	)

	root := &cobra.Command{
		Use:   "potranslator <input_file> <output_file>",
		Short: "Translate PO files while preserving formatting placeholders",
		Long: `potranslator — translate gettext PO files with machine translation.

Untranslated entries are sent to the translation engine with their
formatting placeholders (e.g. {term}, %(listing_id)s) swapped for opaque
tokens, so the engine cannot mangle them; the originals are restored in
the translated text. Freshly translated entries have their fuzzy flag
cleared. Entries that are already translated, or have an empty source,
pass through untouched.

Translation failures are reported per entry and do not abort the run;
the output file is always written.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .potranslator.yaml supplies defaults; explicit flags win.
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if cfg != nil {
				if cfg.SrcLang != "" && !cmd.Flags().Changed("src_lang") {
					srcLang = cfg.SrcLang
				}
				if cfg.DestLang != "" && !cmd.Flags().Changed("dest_lang") {
					destLang = cfg.DestLang
				}
				if cfg.Delay > 0 && !cmd.Flags().Changed("delay") {
					delay = cfg.Delay
				}
			}
			return runTranslate(args[0], args[1], srcLang, destLang, delay, verbose)
		},
	}

	root.Flags().StringVar(&srcLang, "src_lang", "en", "Source language code")
	root.Flags().StringVar(&destLang, "dest_lang", "es", "Destination language code")
	root.Flags().DurationVar(&delay, "delay", time.Second, "Pause before each translation request")
	root.Flags().BoolVar(&verbose, "verbose", false, "Print each translated entry")

	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("potranslator version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

func runTranslate(inPath, outPath, srcLang, destLang string, delay time.Duration, verbose bool) error {
	logInfo(i18n.T("Translating %s -> %s (%s)"), srcLang, destLang, catalog.LangNameNative(destLang))

	var bar *progressbar.ProgressBar

	translator := translate.New(translate.Options{
		Engine:   engine.NewGoogle(delay),
		SrcLang:  srcLang,
		DestLang: destLang,
		OnProgress: func(done, total int) {
			if bar == nil && total > 0 {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetDescription(inPath),
					progressbar.OptionShowCount(),
					progressbar.OptionSetWidth(40),
				)
			}
			if bar != nil {
				_ = bar.Set(done)
			}
		},
		OnTranslated: func(msgid, text string) {
			if verbose {
				if bar != nil {
					_ = bar.Clear()
				}
				logSuccess("%s -> %s", msgid, text)
			}
		},
		OnFailed: func(msgid string, err error) {
			if bar != nil {
				_ = bar.Clear()
			}
			logError("Translating %q: %v", msgid, err)
		},
	})

	results, sum, err := translator.Run(context.Background(), inPath, outPath)
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	if len(results) == 0 {
		logInfo(i18n.T("Nothing to translate, catalog copied unchanged"))
	} else {
		logInfo(i18n.N("%d entry translated", "%d entries translated", sum.Translated), sum.Translated)
		if sum.Failed > 0 {
			logError(i18n.N("%d entry failed", "%d entries failed", sum.Failed), sum.Failed)
		}
	}
	logSuccess(i18n.T("Saved translated PO file to %s"), outPath)
	return nil
}

func main() {
	i18n.Init("")

	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}
