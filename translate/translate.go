// Package translate drives machine translation of PO catalog entries,
// shielding formatting placeholders from the engine via the placeholder
// codec.
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirreza225/potranslator/catalog"
	"github.com/amirreza225/potranslator/engine"
	"github.com/amirreza225/potranslator/placeholder"
)

// Result records the outcome of translating one entry. Err is nil on
// success; a failed entry keeps its msgstr untouched.
type Result struct {
	// MsgID is the source string of the entry.
	MsgID string
	// Text is the restored translation. Empty when Err is set.
	Text string
	// Err is the engine failure for this entry, if any.
	Err error
}

// Summary aggregates one catalog run.
type Summary struct {
	// Translated is the number of entries that received a new msgstr.
	Translated int
	// Skipped counts entries left untouched: empty source, already
	// translated, or obsolete.
	Skipped int
	// Failed counts entries whose engine call errored.
	Failed int
}

// Options configures a Translator.
type Options struct {
	// Engine performs the actual translation calls.
	Engine engine.Engine
	// SrcLang is the source language code (default "en").
	SrcLang string
	// DestLang is the destination language code (default "es").
	DestLang string

	// OnTranslated is called after each successfully translated entry.
	OnTranslated func(msgid, text string)
	// OnFailed is called after each entry whose translation failed.
	OnFailed func(msgid string, err error)
	// OnProgress is called after each processed entry with the number of
	// entries handled so far and the number that need translation.
	OnProgress func(done, total int)
}

// Translator translates the untranslated entries of a catalog. Construct
// one per run with New and reuse it across entries; it holds the engine
// client for the lifetime of the run.
type Translator struct {
	opts Options
}

// New returns a Translator with defaults applied.
func New(opts Options) *Translator {
	if opts.SrcLang == "" {
		opts.SrcLang = "en"
	}
	if opts.DestLang == "" {
		opts.DestLang = "es"
	}
	return &Translator{opts: opts}
}

// TranslateText translates one unit of text with all placeholders
// preserved verbatim: protect, delegate to the engine, restore. Engine
// failures are returned untransformed.
func (t *Translator) TranslateText(ctx context.Context, text string) (string, error) {
	safe, tokens := placeholder.Protect(text)
	translated, err := t.opts.Engine.Translate(ctx, safe, t.opts.SrcLang, t.opts.DestLang)
	if err != nil {
		return "", err
	}
	return placeholder.Restore(translated, tokens), nil
}

// needsTranslation reports whether the walker should translate an entry:
// a non-empty source with a blank (after trimming) translation.
func needsTranslation(e *catalog.Entry) bool {
	return e.MsgID != "" && !e.Obsolete && strings.TrimSpace(e.MsgStr) == ""
}

// TranslateCatalog walks the catalog in entry order and translates every
// entry that needs it. A freshly translated entry gets its msgstr set and
// the needs-review marker cleared in both representations. Engine
// failures are isolated per entry: the msgstr stays unset, the failure is
// recorded, and the walk continues to the next entry.
func (t *Translator) TranslateCatalog(ctx context.Context, c *catalog.Catalog) ([]Result, Summary) {
	var results []Result
	var sum Summary

	pending := 0
	for _, e := range c.Entries {
		if needsTranslation(e) {
			pending++
		}
	}
	if t.opts.OnProgress != nil {
		t.opts.OnProgress(0, pending)
	}

	done := 0
	for _, e := range c.Entries {
		if !needsTranslation(e) {
			sum.Skipped++
			continue
		}

		text, err := t.TranslateText(ctx, e.MsgID)
		if err != nil {
			results = append(results, Result{MsgID: e.MsgID, Err: err})
			sum.Failed++
			if t.opts.OnFailed != nil {
				t.opts.OnFailed(e.MsgID, err)
			}
		} else {
			e.MsgStr = text
			e.SetFuzzy(false)
			results = append(results, Result{MsgID: e.MsgID, Text: text})
			sum.Translated++
			if t.opts.OnTranslated != nil {
				t.opts.OnTranslated(e.MsgID, text)
			}
		}

		done++
		if t.opts.OnProgress != nil {
			t.opts.OnProgress(done, pending)
		}
	}

	return results, sum
}

// Run loads the catalog at inPath, translates it, and saves the result
// to outPath. Entry-level failures are reported in the results; only
// load and save errors abort the run.
func (t *Translator) Run(ctx context.Context, inPath, outPath string) ([]Result, Summary, error) {
	c, err := catalog.Load(inPath)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("loading %s: %w", inPath, err)
	}

	results, sum := t.TranslateCatalog(ctx, c)

	if err := c.Save(outPath); err != nil {
		return results, sum, fmt.Errorf("saving %s: %w", outPath, err)
	}
	return results, sum, nil
}
