package scan

// lexState tracks where the lexer is inside C++ surface syntax so that brace
// characters inside literals and comments never count as structural.
type lexState int

const (
	stateNormal lexState = iota
	stateString
	stateChar
	stateLineComment
	stateBlockComment
)

// lexer carries brace/paren depth across the lines of one extent.
//
// Known limitation: raw string literals (R"(...)") are lexed as ordinary
// strings, so an unescaped quote inside one ends the string early.
type lexer struct {
	state   lexState
	depth   int // structural brace depth
	parens  int // paren depth; braces inside parens are ignored
	entered bool
}

// feed consumes one line (terminator stripped) and updates depth.
func (l *lexer) feed(line string) {
	i := 0
	for i < len(line) {
		c := line[i]
		switch l.state {
		case stateNormal:
			switch c {
			case '"':
				l.state = stateString
			case '\'':
				// C++14 digit separator: 1'000'000. Not a char literal.
				if i > 0 && isDigit(line[i-1]) && i+1 < len(line) && isDigit(line[i+1]) {
					break
				}
				l.state = stateChar
			case '/':
				if i+1 < len(line) {
					switch line[i+1] {
					case '/':
						l.state = stateLineComment
						i = len(line)
						continue
					case '*':
						l.state = stateBlockComment
						i++
					}
				}
			case '(':
				l.parens++
			case ')':
				if l.parens > 0 {
					l.parens--
				}
			case '{':
				if l.parens == 0 {
					l.depth++
					l.entered = true
				}
			case '}':
				if l.parens == 0 && l.entered {
					l.depth--
				}
			}
		case stateString:
			switch c {
			case '\\':
				i++ // skip escaped char
			case '"':
				l.state = stateNormal
			}
		case stateChar:
			switch c {
			case '\\':
				i++
			case '\'':
				l.state = stateNormal
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				l.state = stateNormal
				i++
			}
		case stateLineComment:
			i = len(line)
			continue
		}
		i++
	}

	// Line comments end with the line; string and char literals cannot span
	// lines in C++, so an unterminated one resets rather than poisoning the
	// rest of the scan. Block comments persist.
	switch l.state {
	case stateLineComment, stateString, stateChar:
		l.state = stateNormal
	}
}

// closed reports whether the extent body has been entered and fully closed.
func (l *lexer) closed() bool {
	return l.entered && l.depth <= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
