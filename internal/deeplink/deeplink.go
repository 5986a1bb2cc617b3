// Package deeplink builds imessage: links that open the Messages app with a
// prefilled recipient and message.
package deeplink

import (
	"strings"
)

// Scheme is the URI scheme understood by the Messages app.
const Scheme = "imessage:"

// bodyParam is appended verbatim. Messages expects the leading "&".
const bodyParam = "?&body="

const upperhex = "0123456789ABCDEF"

// Build returns the deep link for recipient, with body prefilled when it is
// not blank.
func Build(recipient, body string) string {
	link := Scheme + EncodeComponent(recipient)
	if strings.TrimSpace(body) == "" {
		return link
	}
	return link + bodyParam + EncodeComponent(body)
}

// EncodeComponent percent-encodes s as a full URI component. Only ASCII
// letters, digits and -_.!~*'() are left as is; every other byte of the
// UTF-8 encoding becomes %XX.
func EncodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unescaped(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unescaped(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unescaped(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
