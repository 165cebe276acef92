// Package export renders candidate and pipeline data to files: CSV and Excel
// spreadsheets, PDF reports, and PNG chart captures. Writers are atomic: the
// output lands under a temporary name and is renamed into place only after a
// successful write, so a failed export never leaves a partial file behind.
package export

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TimestampLayout is the suffix appended to generated filenames.
const TimestampLayout = "2006-01-02_15-04"

var (
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	unsafeRe   = regexp.MustCompile(`[^a-z0-9_-]+`)
	squeezeRe  = regexp.MustCompile(`_+`)
)

// SanitizeFilename turns a free-text title into a safe lowercase file stem:
// diacritics stripped, spaces folded to underscores, everything else
// dropped.
func SanitizeFilename(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}
	s := strings.ToLower(folded)
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeRe.ReplaceAllString(s, "")
	s = squeezeRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_-")
	if s == "" {
		s = "export"
	}
	return s
}

// Filename builds "<stem>_<timestamp>.<ext>" from a free-text title.
func Filename(title, ext string, now time.Time) string {
	return SanitizeFilename(title) + "_" + now.Format(TimestampLayout) + "." + ext
}

// writeAtomic writes data to path via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
