// Package sanitizeuri implements the sanitize_uri contract from spec §6:
// percent-encode unsafe bytes, and drop the whole URL if its scheme isn't
// on an allow-list.
package sanitizeuri

import (
	"fmt"
	"strings"
)

// SafeProtocolHref is the default scheme allow-list for `href` attributes,
// matching the SAFE_PROTOCOL_HREF set named in spec §6.
var SafeProtocolHref = []string{"http", "https", "irc", "ircs", "mailto", "xmpp"}

// SafeProtocolSrc is the default scheme allow-list for `src` attributes,
// matching SAFE_PROTOCOL_SRC.
var SafeProtocolSrc = []string{"http", "https"}

// safe is the set of ASCII bytes that never need percent-encoding in a URL,
// plus '%' itself (so existing percent-escapes are left alone).
const safe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
	"-_.~" + "!*'();:@&=+$,/?#[]%"

func isSafeByte(b byte) bool {
	return strings.IndexByte(safe, b) >= 0
}

// Sanitize percent-encodes any byte of s that isn't in the URL-safe set,
// then, if allowed is non-nil, checks s's scheme against it. A nil allowed
// slice disables the scheme check entirely (allow_dangerous_protocol). A
// non-nil, possibly-empty allowed slice that doesn't contain the scheme
// (or, for a URL with no scheme, is simply irrelevant) causes Sanitize to
// return "".
func Sanitize(s string, allowed []string) string {
	if allowed != nil {
		if scheme, ok := schemeOf(s); ok && !containsFold(allowed, scheme) {
			return ""
		}
	}
	return percentEncode(s)
}

// schemeOf extracts the scheme of a URL-ish string: a leading run of
// letters/digits/+/-/. terminated by ':', as long as that colon appears
// before the first '/', '?', or '#' (otherwise the string is a relative
// reference and has no scheme).
func schemeOf(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':':
			if i == 0 {
				return "", false
			}
			return strings.ToLower(s[:i]), true
		case c == '/' || c == '?' || c == '#':
			return "", false
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.':
			continue
		default:
			return "", false
		}
	}
	return "", false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// percentEncode escapes every byte outside the URL-safe set, leaving
// already-valid %XX escapes untouched.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(c)
			continue
		}
		if isSafeByte(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
