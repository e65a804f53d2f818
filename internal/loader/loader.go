package loader

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ihsansencan/sitesgouv-go/internal/model"
)

// maxRejectedChars limits how much of a rejected line is retained.
const maxRejectedChars = 50

// LoadFromFile reads the Latin-1 encoded source file line by line and
// returns the deduplicated, sorted domain sequence together with the
// raw line count and the rejection records.
//
// Each line carries one record; when fields are tab-separated only the
// first field is consumed. Empty lines are ignored. Lines whose token
// fails suffix validation are recorded as rejected unless they start
// with '#'.
//
// An open or read error is the only failure: the caller is expected to
// treat it as fatal.
func LoadFromFile(path string) (model.SourceData, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.SourceData{}, fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	data := model.SourceData{Path: path}
	seen := make(map[string]struct{})

	// The upstream data.gouv.fr export is ISO 8859-1, not UTF-8.
	sc := bufio.NewScanner(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		data.RawLines++

		token := extractToken(line)
		if token == "" {
			continue
		}

		domain := Normalize(token)
		if HasValidSuffix(domain) {
			seen[domain] = struct{}{}
			continue
		}

		if !strings.HasPrefix(line, "#") {
			data.Rejected = append(data.Rejected, model.RejectedLine{
				Number: lineNo,
				Text:   truncate(line, maxRejectedChars),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return model.SourceData{}, fmt.Errorf("scan source file: %w", err)
	}

	data.Domains = make([]string, 0, len(seen))
	for d := range seen {
		data.Domains = append(data.Domains, d)
	}
	sort.Strings(data.Domains)

	return data, nil
}

// extractToken picks the candidate domain out of a trimmed, non-empty
// line: everything before the first tab if the line is tab-separated,
// otherwise the first whitespace-delimited field.
func extractToken(line string) string {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		return strings.TrimSpace(line[:i])
	}
	return strings.TrimSpace(strings.Fields(line)[0])
}

// Normalize lowercases the token, removes every occurrence of the
// literal "www." (not just as a prefix) and strips any rune that is
// non-printable or whitespace.
func Normalize(token string) string {
	domain := strings.ReplaceAll(strings.ToLower(token), "www.", "")
	return strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, domain)
}

// HasValidSuffix reports whether the normalized domain ends with one of
// the accepted suffixes. First match wins; the suffixes overlap on
// purpose (see model.ValidSuffixes).
func HasValidSuffix(domain string) bool {
	for _, suffix := range model.ValidSuffixes {
		if strings.HasSuffix(domain, suffix) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
