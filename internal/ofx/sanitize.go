package ofx

import (
	"strings"
)

// sanitize turns the raw download into well-formed XML the tree parser
// can consume. Legacy OFX is SGML-flavored: colon headers precede the
// root, ampersands come through unescaped, and leaf fields have no
// closing tags. The repair runs in two passes (escape, then close) so
// the parser can assume well-formed input.
func sanitize(data string) (string, error) {
	idx := strings.Index(strings.ToUpper(data), "<OFX>")
	if idx < 0 {
		return "", ErrMalformedDocument
	}

	doc := escapeAmpersands(data[idx:])

	return closeLeafTags(doc), nil
}

// escapeAmpersands rewrites bare '&' as '&amp;' while leaving existing
// entities ("&amp;", "&#38;", ...) untouched.
func escapeAmpersands(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '&' {
			b.WriteByte(c)
			continue
		}

		if isEntity(s[i+1:]) {
			b.WriteByte(c)
			continue
		}

		b.WriteString("&amp;")
	}

	return b.String()
}

// isEntity reports whether s starts with the body of an entity
// reference the strict XML decoder understands: one of the five
// predefined entities or a numeric character reference. Anything else
// (payee text like "AT&T;") must be escaped, not passed through.
func isEntity(s string) bool {
	const maxEntityLen = 8

	semi := strings.IndexByte(s, ';')
	if semi <= 0 || semi > maxEntityLen {
		return false
	}

	body := s[:semi]

	if body[0] == '#' {
		digits := body[1:]
		hex := false

		if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
			hex = true
			digits = digits[1:]
		}

		if len(digits) == 0 {
			return false
		}

		for i := 0; i < len(digits); i++ {
			c := digits[i]

			switch {
			case c >= '0' && c <= '9':
			case hex && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
			default:
				return false
			}
		}

		return true
	}

	switch body {
	case "amp", "lt", "gt", "quot", "apos":
		return true
	}

	return false
}

// closeLeafTags synthesizes the closing tag for every leaf field whose
// value runs up to the next tag boundary. Aggregate tags (no text before
// the next tag) and already-closed fields pass through unchanged, so a
// well-formed XML document is a fixed point of this pass.
func closeLeafTags(s string) string {
	var b strings.Builder

	b.Grow(len(s) + len(s)/4)

	i := 0
	for i < len(s) {
		open := strings.IndexByte(s[i:], '<')
		if open < 0 {
			b.WriteString(s[i:])
			break
		}

		open += i
		b.WriteString(s[i:open])

		end := strings.IndexByte(s[open:], '>')
		if end < 0 {
			b.WriteString(s[open:])
			break
		}

		end += open
		tag := s[open : end+1]
		b.WriteString(tag)
		i = end + 1

		if strings.HasPrefix(tag, "</") || strings.HasSuffix(tag, "/>") {
			continue
		}

		name := tagName(tag)
		if name == "" {
			continue
		}

		next := strings.IndexByte(s[i:], '<')
		if next < 0 {
			// Trailing text after the last tag: close the leaf and stop.
			value := strings.TrimSpace(s[i:])
			if value != "" {
				b.WriteString(value)
				b.WriteString("</" + name + ">")
			}

			break
		}

		next += i
		text := s[i:next]
		value := strings.TrimSpace(text)

		if value == "" {
			// Aggregate tag or blank run before the next tag.
			b.WriteString(text)
			i = next

			continue
		}

		if strings.HasPrefix(strings.ToUpper(s[next:]), "</"+strings.ToUpper(name)+">") {
			// Leaf already closed explicitly.
			b.WriteString(text)
			i = next

			continue
		}

		b.WriteString(value)
		b.WriteString("</" + name + ">")
		b.WriteString(text[strings.Index(text, value)+len(value):])
		i = next
	}

	return b.String()
}

// tagName extracts the element name from a raw "<NAME>" token.
func tagName(tag string) string {
	name := strings.Trim(tag, "<>")
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}

	return ""
}
