// This file is part of IPP-proj2.

package vm

import (
	"strconv"
	"strings"
)

// parseInt decodes a signed decimal integer lexeme. Used both for literal
// int operands and the default InputPort's READ int (§4.3).
func parseInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseBool decodes a bool lexeme. Case-insensitive true/false is allowed
// (§4.3); this module's operand decoder does not normalize (matching
// source behavior, §4.3), but the default InputPort is more permissive
// since it is reading free-form host input, not a literal.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// decodeEscapes replaces \DDD escapes (exactly three decimal digits) with
// the rune at that codepoint. Per §4.3 this transform is only observable
// at WRITE time in the source interpreter, so string Values keep their raw
// lexeme (escapes intact) everywhere else — STRLEN, CONCAT, GETCHAR,
// SETCHAR and STRI2INT all see the same bytes the source document wrote.
// Only opWrite calls decodeEscapes, exactly once, right before printing.
func decodeEscapes(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == '\\' && i+3 < len(s) && isDigit(s[i+1]) && isDigit(s[i+2]) && isDigit(s[i+3]) {
			n := int(s[i+1]-'0')*100 + int(s[i+2]-'0')*10 + int(s[i+3]-'0')
			b.WriteRune(rune(n))
			i += 4
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
