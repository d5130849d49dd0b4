// Package catalog implements reading and writing of gettext PO catalogs.
//
// The model is deliberately round-trip faithful: entries this tool does
// not touch (already translated, plural, obsolete) must come out of Save
// exactly as Load saw them.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Entry is one translation unit: a source string, its translation, and
// the surrounding metadata.
type Entry struct {
	// TranslatorComments are lines starting with "# ".
	TranslatorComments []string
	// ExtractedComments are lines starting with "#.".
	ExtractedComments []string
	// References are source locations, lines starting with "#:".
	References []string
	// Flags are the "#," flags, e.g. "fuzzy", "python-format".
	Flags []string
	// PreviousMsgID is the "#| msgid" line kept on fuzzy entries.
	PreviousMsgID string

	// MsgCtxt is the message context.
	MsgCtxt string
	// MsgID is the source string.
	MsgID string
	// MsgIDPlural is the plural source string, if any.
	MsgIDPlural string
	// MsgStr is the translation.
	MsgStr string
	// MsgStrPlural maps plural form index to translation.
	MsgStrPlural map[int]string

	// Fuzzy mirrors the presence of the "fuzzy" flag. Catalog libraries
	// expose needs-review state both as an attribute and as flag-set
	// membership; this model keeps the two in sync via SetFuzzy.
	Fuzzy bool

	// Obsolete marks entries prefixed with "#~".
	Obsolete bool
}

// HasFlag reports whether a flag is present.
func (e *Entry) HasFlag(flag string) bool {
	for _, f := range e.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// SetFuzzy sets or clears the needs-review state in both
// representations: the Fuzzy attribute and the "fuzzy" flag.
func (e *Entry) SetFuzzy(fuzzy bool) {
	e.Fuzzy = fuzzy
	if fuzzy {
		if !e.HasFlag("fuzzy") {
			e.Flags = append(e.Flags, "fuzzy")
		}
		return
	}
	kept := e.Flags[:0]
	for _, f := range e.Flags {
		if f != "fuzzy" {
			kept = append(kept, f)
		}
	}
	e.Flags = kept
}

// IsTranslated reports whether the entry carries a usable translation.
func (e *Entry) IsTranslated() bool {
	if e.MsgID == "" || e.Fuzzy {
		return false
	}
	if e.MsgIDPlural != "" {
		if len(e.MsgStrPlural) == 0 {
			return false
		}
		for _, v := range e.MsgStrPlural {
			if v == "" {
				return false
			}
		}
		return true
	}
	return strings.TrimSpace(e.MsgStr) != ""
}

// Catalog is an ordered sequence of entries plus the header entry
// (msgid "").
type Catalog struct {
	Header  *Entry
	Entries []*Entry
}

// New returns an empty catalog with a blank header.
func New() *Catalog {
	return &Catalog{
		Header: &Entry{},
	}
}

// HeaderField returns a header field value by name, case-insensitively.
func (c *Catalog) HeaderField(name string) string {
	if c.Header == nil {
		return ""
	}
	for _, line := range strings.Split(c.Header.MsgStr, "\n") {
		if idx := strings.Index(line, ":"); idx > 0 {
			if strings.EqualFold(strings.TrimSpace(line[:idx]), name) {
				return strings.TrimSpace(line[idx+1:])
			}
		}
	}
	return ""
}

// EntryByMsgID finds a non-obsolete entry by its source string.
func (c *Catalog) EntryByMsgID(msgid string) *Entry {
	for _, e := range c.Entries {
		if e.MsgID == msgid && !e.Obsolete {
			return e
		}
	}
	return nil
}

// Stats returns counts over the non-obsolete entries.
func (c *Catalog) Stats() (total, translated, fuzzy, untranslated int) {
	for _, e := range c.Entries {
		if e.MsgID == "" || e.Obsolete {
			continue
		}
		total++
		switch {
		case e.Fuzzy:
			fuzzy++
		case e.IsTranslated():
			translated++
		default:
			untranslated++
		}
	}
	return
}

// Parse reads a PO catalog from a reader.
func Parse(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var current *Entry
	var lastField string // last msgid/msgstr/... keyword, for continuation lines
	lineNum := 0

	flush := func() {
		if current == nil {
			return
		}
		current.Fuzzy = current.HasFlag("fuzzy")
		if current.MsgID == "" && !current.Obsolete && c.Header == nil {
			c.Header = current
		} else {
			c.Entries = append(c.Entries, current)
		}
		current = nil
		lastField = ""
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if current == nil {
			current = &Entry{MsgStrPlural: make(map[int]string)}
		}

		if strings.HasPrefix(line, "#~ ") {
			current.Obsolete = true
			line = line[3:]
		}

		switch {
		case strings.HasPrefix(line, "#:"):
			current.References = append(current.References, strings.TrimSpace(line[2:]))
			continue
		case strings.HasPrefix(line, "#,"):
			for _, flag := range strings.Split(line[2:], ",") {
				if flag = strings.TrimSpace(flag); flag != "" {
					current.Flags = append(current.Flags, flag)
				}
			}
			continue
		case strings.HasPrefix(line, "#."):
			current.ExtractedComments = append(current.ExtractedComments, strings.TrimSpace(line[2:]))
			continue
		case strings.HasPrefix(line, "#|"):
			prev := strings.TrimSpace(line[2:])
			if strings.HasPrefix(prev, "msgid ") {
				current.PreviousMsgID = unquote(strings.TrimPrefix(prev, "msgid "))
			}
			continue
		case strings.HasPrefix(line, "#"):
			comment := strings.TrimPrefix(line[1:], " ")
			current.TranslatorComments = append(current.TranslatorComments, comment)
			continue
		}

		switch {
		case strings.HasPrefix(line, "msgctxt "):
			current.MsgCtxt = unquote(strings.TrimPrefix(line, "msgctxt "))
			lastField = "msgctxt"
		case strings.HasPrefix(line, "msgid_plural "):
			current.MsgIDPlural = unquote(strings.TrimPrefix(line, "msgid_plural "))
			lastField = "msgid_plural"
		case strings.HasPrefix(line, "msgid "):
			current.MsgID = unquote(strings.TrimPrefix(line, "msgid "))
			lastField = "msgid"
		case strings.HasPrefix(line, "msgstr["):
			var idx int
			if n, err := fmt.Sscanf(line, "msgstr[%d]", &idx); err != nil || n != 1 {
				return nil, fmt.Errorf("line %d: invalid msgstr index: %s", lineNum, line)
			}
			bracketEnd := strings.Index(line, "] ")
			if bracketEnd < 0 {
				return nil, fmt.Errorf("line %d: invalid msgstr format: %s", lineNum, line)
			}
			current.MsgStrPlural[idx] = unquote(line[bracketEnd+2:])
			lastField = fmt.Sprintf("msgstr[%d]", idx)
		case strings.HasPrefix(line, "msgstr "):
			current.MsgStr = unquote(strings.TrimPrefix(line, "msgstr "))
			lastField = "msgstr"
		case strings.HasPrefix(line, "\""):
			val := unquote(line)
			switch {
			case lastField == "msgctxt":
				current.MsgCtxt += val
			case lastField == "msgid":
				current.MsgID += val
			case lastField == "msgid_plural":
				current.MsgIDPlural += val
			case lastField == "msgstr":
				current.MsgStr += val
			case strings.HasPrefix(lastField, "msgstr["):
				var idx int
				fmt.Sscanf(lastField, "msgstr[%d]", &idx)
				current.MsgStrPlural[idx] += val
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if c.Header == nil {
		c.Header = &Entry{}
	}
	return c, nil
}

// Load reads a PO catalog from disk.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Write writes the catalog to a writer.
func (c *Catalog) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if c.Header != nil {
		writeEntry(bw, c.Header)
	}
	for _, e := range c.Entries {
		fmt.Fprintln(bw)
		writeEntry(bw, e)
	}
	return bw.Flush()
}

// Save writes the catalog to disk.
func (c *Catalog) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return c.Write(out)
}

func writeEntry(w *bufio.Writer, e *Entry) {
	prefix := ""
	if e.Obsolete {
		prefix = "#~ "
	}

	for _, comment := range e.TranslatorComments {
		fmt.Fprintf(w, "# %s\n", comment)
	}
	for _, comment := range e.ExtractedComments {
		fmt.Fprintf(w, "#. %s\n", comment)
	}
	for _, ref := range e.References {
		fmt.Fprintf(w, "#: %s\n", ref)
	}
	if len(e.Flags) > 0 {
		fmt.Fprintf(w, "#, %s\n", strings.Join(e.Flags, ", "))
	}
	if e.PreviousMsgID != "" {
		fmt.Fprintf(w, "#| msgid %s\n", quote(e.PreviousMsgID))
	}

	if e.MsgCtxt != "" {
		writeQuotedField(w, prefix+"msgctxt", e.MsgCtxt)
	}
	writeQuotedField(w, prefix+"msgid", e.MsgID)
	if e.MsgIDPlural != "" {
		writeQuotedField(w, prefix+"msgid_plural", e.MsgIDPlural)
	}

	if e.MsgIDPlural != "" && len(e.MsgStrPlural) > 0 {
		indices := make([]int, 0, len(e.MsgStrPlural))
		for idx := range e.MsgStrPlural {
			indices = append(indices, idx)
		}
		sort.Ints(indices)
		for _, idx := range indices {
			writeQuotedField(w, fmt.Sprintf("%smsgstr[%d]", prefix, idx), e.MsgStrPlural[idx])
		}
	} else {
		writeQuotedField(w, prefix+"msgstr", e.MsgStr)
	}
}

// writeQuotedField writes a PO field with gettext-style multiline
// quoting: an empty first string, then one quoted string per line.
func writeQuotedField(w *bufio.Writer, field, value string) {
	if !strings.Contains(value, "\n") {
		fmt.Fprintf(w, "%s %s\n", field, quote(value))
		return
	}
	fmt.Fprintf(w, "%s \"\"\n", field)
	parts := strings.Split(value, "\n")
	for i, part := range parts {
		if i < len(parts)-1 {
			fmt.Fprintf(w, "%s\n", quote(part+"\n"))
		} else if part != "" {
			fmt.Fprintf(w, "%s\n", quote(part))
		}
	}
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return `"` + s + `"`
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]

	var result strings.Builder
	result.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				result.WriteByte('\n')
				i++
			case 't':
				result.WriteByte('\t')
				i++
			case '\\':
				result.WriteByte('\\')
				i++
			case '"':
				result.WriteByte('"')
				i++
			default:
				result.WriteByte(s[i])
			}
		} else {
			result.WriteByte(s[i])
		}
	}
	return result.String()
}
