package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	cfg lexcfg
	// col is the number of runes read so far, i.e. the column of the last
	// rune read.
	col int
}

func lex(src io.RuneScanner, cfg lexcfg) *lexer {
	return &lexer{src: src, cfg: cfg}
}

// Tokenize converts an expression into its token sequence. Tokenization stops
// at the first invalid token, in which case the result is nil and the error
// is a *CharError, a *NumError, or an error from reading src.
func Tokenize(src io.RuneScanner, opts ...LexOption) ([]Token, error) {
	var cfg lexcfg
	for _, opt := range opts {
		cfg = opt.lexOption(cfg)
	}
	l := lex(src, cfg)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// TokenizeString is a shortcut to tokenize a string expression.
func TokenizeString(src string, opts ...LexOption) ([]Token, error) {
	return Tokenize(strings.NewReader(src), opts...)
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		col := l.col
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '-':
			// Either subtraction or the sign of a literal.
			c, err := l.readRune()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return OpToken(OpSub, col), nil
				}
				return Token{}, err
			}
			l.unreadRune()
			if !isDigit(c) {
				return OpToken(OpSub, col), nil
			}
			l.buf.WriteRune('-')
			return l.scanNum(col)
		case isDigit(r):
			l.unreadRune()
			return l.scanNum(col)
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			return l.scanIdent(col)
		case r == '=':
			return AssignToken(col), nil
		default:
			op := opFor(r)
			if op == opNone || op == OpPow && !l.cfg.pow {
				return Token{}, &CharError{Char: r, Col: col}
			}
			return OpToken(op, col), nil
		}
	}
}

// scanNum scans a numeric literal starting at col. The buffer may already
// hold a minus sign.
func (l *lexer) scanNum(col int) (Token, error) {
	defer l.buf.Reset()
	var last rune
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		// A sign directly after an exponent marker belongs to the literal.
		exp := (r == '+' || r == '-') && (last == 'e' || last == 'E')
		if !exp && l.separates(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		last = r
	}
	text := l.buf.String()
	if strings.ContainsAny(text, "xXpP_") {
		// Only decimal literals. ParseFloat would also take hex and
		// digit separators.
		return Token{}, &NumError{Text: text, Col: col, Err: &strconv.NumError{Func: "ParseFloat", Num: text, Err: strconv.ErrSyntax}}
	}
	x, err := strconv.ParseFloat(text, 64)
	// Out of range literals are infinite.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, &NumError{Text: text, Col: col, Err: err}
	}
	return NumToken(x, col), nil
}

// scanIdent scans an identifier starting at col.
func (l *lexer) scanIdent(col int) (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				break
			}
			return Token{}, err
		}
		switch {
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
		case l.separates(r):
			l.unreadRune()
			return VarToken(l.buf.String(), col), nil
		default:
			return Token{}, &CharError{Char: r, Col: l.col}
		}
	}
	return VarToken(l.buf.String(), col), nil
}

// separates returns whether r ends a number or identifier.
func (l *lexer) separates(r rune) bool {
	return unicode.IsSpace(r) || r == '=' || opFor(r) != opNone
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
