package lexer

import "unicode"

func lexDefault(l *lexer) lexFn {
	switch r := l.next(); {
	case r == eof:
		l.emit(TokEof)
		return nil

	case r == '(':
		l.emit(TokParenOpen)
	case r == ')':
		l.emit(TokParenClose)
	case r == '[':
		l.emit(TokBracketOpen)
	case r == ']':
		l.emit(TokBracketClose)
	case r == '<':
		l.emit(TokAngleOpen)
	case r == '>':
		l.emit(TokAngleClose)

	case r == ',':
		l.emit(TokIgnore)
	case r == '#':
		return lexComment
	case unicode.IsSpace(r):
		l.backup()
		return lexSpace

	case unicode.IsDigit(r):
		l.backup()
		return lexNumber
	case IsSymbolRune(r):
		l.backup()
		return lexSymbol

	default:
		return l.errorf("Unexpected character ‘%c’", r)
	}

	return lexDefault
}

func lexSpace(l *lexer) lexFn {
	for unicode.IsSpace(l.peek()) {
		l.next()
	}
	l.emit(TokIgnore)
	return lexDefault
}

// Comments run from ‘#’ to the end of the line.  The newline itself is left
// for lexSpace.
func lexComment(l *lexer) lexFn {
	for {
		switch l.peek() {
		case '\n', eof:
			l.emit(TokIgnore)
			return lexDefault
		}
		l.next()
	}
}

func lexNumber(l *lexer) lexFn {
	for unicode.IsDigit(l.peek()) {
		l.next()
	}
	l.emit(TokNumber)
	return lexDefault
}

func lexSymbol(l *lexer) lexFn {
	for IsSymbolRune(l.peek()) {
		l.next()
	}
	l.emit(TokSymbol)
	return lexDefault
}
