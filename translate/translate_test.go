package translate

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirreza225/potranslator/catalog"
)

// fakeEngine translates via a lookup table keyed on the protected text
// and fails for anything not in the table.
type fakeEngine struct {
	replies map[string]string
	calls   []string
}

func (f *fakeEngine) Translate(ctx context.Context, text, srcLang, destLang string) (string, error) {
	f.calls = append(f.calls, text)
	if reply, ok := f.replies[text]; ok {
		return reply, nil
	}
	return "", errors.New("no reply configured")
}

func TestTranslateTextPreservesPlaceholders(t *testing.T) {
	eng := &fakeEngine{replies: map[string]string{
		// The engine re-cased the tokens, as real engines do.
		"Hello UNIQ_PH_0_UNIQ, you have UNIQ_PH_1_UNIQ messages": "Hola UNIQ_ph_0_uniq, tienes UNIQ_PH_1_UNIQ mensajes",
	}}
	tr := New(Options{Engine: eng})

	got, err := tr.TranslateText(context.Background(), "Hello {name}, you have %(count)d messages")
	if err != nil {
		t.Fatalf("TranslateText error: %v", err)
	}
	want := "Hola {name}, tienes %(count)d mensajes"
	if got != want {
		t.Fatalf("TranslateText = %q, want %q", got, want)
	}
}

func TestTranslateTextEngineError(t *testing.T) {
	tr := New(Options{Engine: &fakeEngine{}})

	if _, err := tr.TranslateText(context.Background(), "hello"); err == nil {
		t.Fatal("expected engine error to propagate")
	}
}

func TestNewDefaults(t *testing.T) {
	tr := New(Options{Engine: &fakeEngine{}})
	if tr.opts.SrcLang != "en" || tr.opts.DestLang != "es" {
		t.Fatalf("defaults = %q -> %q, want en -> es", tr.opts.SrcLang, tr.opts.DestLang)
	}

	tr = New(Options{Engine: &fakeEngine{}, SrcLang: "de", DestLang: "fr"})
	if tr.opts.SrcLang != "de" || tr.opts.DestLang != "fr" {
		t.Fatalf("explicit langs overridden: %q -> %q", tr.opts.SrcLang, tr.opts.DestLang)
	}
}

func TestTranslateCatalogSkipsTranslatedAndEmpty(t *testing.T) {
	c := catalog.New()
	c.Entries = []*catalog.Entry{
		{MsgID: "done", MsgStr: "hecho"},
		{MsgID: ""},
		{MsgID: "pending"},
	}

	eng := &fakeEngine{replies: map[string]string{"pending": "pendiente"}}
	tr := New(Options{Engine: eng})

	results, sum := tr.TranslateCatalog(context.Background(), c)

	if len(eng.calls) != 1 || eng.calls[0] != "pending" {
		t.Fatalf("engine calls = %v, want only the pending entry", eng.calls)
	}
	if len(results) != 1 || results[0].Text != "pendiente" || results[0].Err != nil {
		t.Fatalf("results = %+v", results)
	}
	if sum.Translated != 1 || sum.Skipped != 2 || sum.Failed != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	if c.Entries[0].MsgStr != "hecho" {
		t.Errorf("already translated entry changed: %q", c.Entries[0].MsgStr)
	}
	if c.Entries[2].MsgStr != "pendiente" {
		t.Errorf("pending entry msgstr = %q", c.Entries[2].MsgStr)
	}
}

func TestTranslateCatalogClearsFuzzyBothWays(t *testing.T) {
	e := &catalog.Entry{MsgID: "draft"}
	e.SetFuzzy(true)
	c := catalog.New()
	c.Entries = []*catalog.Entry{e}

	tr := New(Options{Engine: &fakeEngine{replies: map[string]string{"draft": "borrador"}}})
	tr.TranslateCatalog(context.Background(), c)

	if e.MsgStr != "borrador" {
		t.Fatalf("msgstr = %q", e.MsgStr)
	}
	if e.Fuzzy {
		t.Error("Fuzzy attribute still set after translation")
	}
	if e.HasFlag("fuzzy") {
		t.Error("fuzzy flag still present after translation")
	}
}

func TestTranslateCatalogContinuesPastFailures(t *testing.T) {
	c := catalog.New()
	c.Entries = []*catalog.Entry{
		{MsgID: "boom"},
		{MsgID: "after"},
	}

	var failed []string
	tr := New(Options{
		Engine:   &fakeEngine{replies: map[string]string{"after": "después"}},
		OnFailed: func(msgid string, err error) { failed = append(failed, msgid) },
	})

	results, sum := tr.TranslateCatalog(context.Background(), c)

	if sum.Failed != 1 || sum.Translated != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if c.Entries[0].MsgStr != "" {
		t.Errorf("failed entry msgstr = %q, want empty", c.Entries[0].MsgStr)
	}
	if c.Entries[1].MsgStr != "después" {
		t.Errorf("entry after failure not translated: %q", c.Entries[1].MsgStr)
	}
	if len(failed) != 1 || failed[0] != "boom" {
		t.Errorf("OnFailed calls = %v", failed)
	}
	if len(results) != 2 {
		t.Fatalf("results len = %d, want 2", len(results))
	}
	if results[0].Err == nil || results[1].Err != nil {
		t.Errorf("results = %+v", results)
	}
}

func TestTranslateCatalogProgress(t *testing.T) {
	c := catalog.New()
	c.Entries = []*catalog.Entry{
		{MsgID: "a"},
		{MsgID: "skip", MsgStr: "x"},
		{MsgID: "b"},
	}

	type step struct{ done, total int }
	var steps []step
	tr := New(Options{
		Engine:     &fakeEngine{replies: map[string]string{"a": "1", "b": "2"}},
		OnProgress: func(done, total int) { steps = append(steps, step{done, total}) },
	})
	tr.TranslateCatalog(context.Background(), c)

	want := []step{{0, 2}, {1, 2}, {2, 2}}
	if len(steps) != len(want) {
		t.Fatalf("progress steps = %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("progress steps = %v, want %v", steps, want)
		}
	}
}

func TestRunRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.po")
	outPath := filepath.Join(dir, "out.po")

	in := catalog.New()
	in.Header.MsgStr = "Language: es\n"
	fuzzy := &catalog.Entry{MsgID: "greet {user}"}
	fuzzy.SetFuzzy(true)
	in.Entries = []*catalog.Entry{
		{MsgID: "done", MsgStr: "hecho"},
		fuzzy,
		{MsgID: "fails"},
	}
	if err := in.Save(inPath); err != nil {
		t.Fatalf("Save input: %v", err)
	}

	tr := New(Options{Engine: &fakeEngine{replies: map[string]string{
		"greet UNIQ_PH_0_UNIQ": "saludar UNIQ_PH_0_UNIQ",
	}}})

	results, sum, err := tr.Run(context.Background(), inPath, outPath)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if sum.Translated != 1 || sum.Failed != 1 || sum.Skipped != 1 {
		t.Fatalf("summary = %+v", sum)
	}
	if len(results) != 2 {
		t.Fatalf("results len = %d, want 2", len(results))
	}

	// The output must exist even though one entry failed.
	out, err := catalog.Load(outPath)
	if err != nil {
		t.Fatalf("Load output: %v", err)
	}
	e := out.EntryByMsgID("greet {user}")
	if e == nil {
		t.Fatal("translated entry missing from output")
	}
	if e.MsgStr != "saludar {user}" {
		t.Errorf("msgstr = %q, want placeholder restored", e.MsgStr)
	}
	if e.Fuzzy || e.HasFlag("fuzzy") {
		t.Errorf("fuzzy not cleared in output: attr=%v flags=%v", e.Fuzzy, e.Flags)
	}
	if f := out.EntryByMsgID("fails"); f == nil || strings.TrimSpace(f.MsgStr) != "" {
		t.Errorf("failed entry should stay untranslated: %#v", f)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	tr := New(Options{Engine: &fakeEngine{}})

	_, _, err := tr.Run(context.Background(), filepath.Join(dir, "nope.po"), filepath.Join(dir, "out.po"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}
