package classify

import (
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// IsIDN reports whether a domain is internationalized: either it still
// carries non-ASCII runes (accented French labels the normalizer kept
// as-is) or it is the punycode form of such a label, i.e. its Unicode
// representation differs from the raw string.
func IsIDN(domain string) bool {
	if !isASCII(domain) {
		return true
	}
	unicodeForm, err := idna.ToUnicode(domain)
	if err != nil {
		return false
	}
	return unicodeForm != domain
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
