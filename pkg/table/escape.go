package table

import "unicode/utf8"

// runeScanner is a minimal peekable iterator over the runes of a field.
type runeScanner struct {
	runes []rune
	pos   int
}

func (s *runeScanner) peek() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	return s.runes[s.pos], true
}

func (s *runeScanner) next() (rune, bool) {
	r, ok := s.peek()
	if ok {
		s.pos++
	}
	return r, ok
}

// digitVal returns the value of r as a digit in the given base.
func digitVal(r rune, base int) (byte, bool) {
	var d int
	switch {
	case r >= '0' && r <= '9':
		d = int(r - '0')
	case r >= 'a' && r <= 'f':
		d = int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		d = int(r-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return byte(d), true
}

// parseCode parses the numeric part of a \xHH or \0NNN escape. Octal
// input can take three digits (nine bits), so the accumulator wraps at
// a byte boundary the way GNU echo does.
func parseCode(sc *runeScanner, base int) (byte, bool) {
	maxDigits := 3
	if base == 16 {
		maxDigits = 2
	}
	p, ok := sc.peek()
	if !ok {
		return 0, false
	}
	d, ok := digitVal(p, base)
	if !ok {
		return 0, false
	}
	sc.next()
	ret := d
	for n := 1; n < maxDigits; n++ {
		p, ok := sc.peek()
		if !ok {
			break
		}
		d, ok := digitVal(p, base)
		if !ok {
			break
		}
		sc.next()
		ret = ret*byte(base) + d
	}
	return ret, true
}

// decodeEscapes interprets echo -e style backslash escapes in a field.
// Supported escapes: \\ \a \b \c \e \f \n \r \t \v, \xHH (hex),
// \0NNN (octal), and \NNN (octal with leading digit 1-7). A \c escape
// truncates the field at that point. Unknown escapes are kept verbatim.
//
// Escapes operate on bytes, so the result may be invalid UTF-8; callers
// validate decoded fields before building the table.
func decodeEscapes(s string) string {
	sc := &runeScanner{runes: []rune(s)}
	out := make([]byte, 0, len(s))
	for {
		c, ok := sc.next()
		if !ok {
			break
		}
		if c != '\\' {
			out = utf8.AppendRune(out, c)
			continue
		}

		// \NNN octal without the leading zero. '0' is excluded because
		// that is the \0NNN form handled below.
		if p, ok := sc.peek(); ok && p >= '1' && p <= '7' {
			if b, ok := parseCode(sc, 8); ok {
				out = append(out, b)
				continue
			}
		}

		c, ok = sc.next()
		if !ok {
			out = append(out, '\\')
			break
		}
		switch c {
		case '\\':
			out = append(out, '\\')
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case 'c':
			return string(out)
		case 'e':
			out = append(out, 0x1b)
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'v':
			out = append(out, '\v')
		case 'x':
			if b, ok := parseCode(sc, 16); ok {
				out = append(out, b)
			} else {
				out = append(out, '\\', 'x')
			}
		case '0':
			b, _ := parseCode(sc, 8) // no digits means NUL
			out = append(out, b)
		default:
			out = append(out, '\\')
			out = utf8.AppendRune(out, c)
		}
	}
	return string(out)
}
