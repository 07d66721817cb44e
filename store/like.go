package store

import (
	"strings"
	"unicode/utf8"
)

// MatchFold reports whether s matches the SQL LIKE pattern, ignoring case.
// '%' matches any run of characters and '_' exactly one. There is no escape
// character.
func MatchFold(pattern, s string) bool {
	return matchLike(strings.ToLower(pattern), strings.ToLower(s))
}

func matchLike(p, s string) bool {
	for len(p) > 0 {
		switch p[0] {
		case '%':
			for len(p) > 0 && p[0] == '%' {
				p = p[1:]
			}
			if p == "" {
				return true
			}
			for i := 0; i <= len(s); {
				if matchLike(p, s[i:]) {
					return true
				}
				if i == len(s) {
					break
				}
				_, size := utf8.DecodeRuneInString(s[i:])
				i += size
			}
			return false
		case '_':
			if s == "" {
				return false
			}
			_, size := utf8.DecodeRuneInString(s)
			p, s = p[1:], s[size:]
		default:
			pr, psize := utf8.DecodeRuneInString(p)
			sr, ssize := utf8.DecodeRuneInString(s)
			if s == "" || pr != sr {
				return false
			}
			p, s = p[psize:], s[ssize:]
		}
	}
	return s == ""
}
