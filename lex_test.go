package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t  ", nil},
		// numbers
		{"zero", "0", []Token{NumToken(0, 1)}},
		{"digits", "9876543210", []Token{NumToken(9876543210, 1)}},
		{"padded", "  7  ", []Token{NumToken(7, 3)}},
		{"two", "1 0", []Token{NumToken(1, 1), NumToken(0, 3)}},
		{"frac", "2.5", []Token{NumToken(2.5, 1)}},
		{"exp", "1e3", []Token{NumToken(1000, 1)}},
		{"exp-neg", "1.5e-3", []Token{NumToken(0.0015, 1)}},
		{"exp-pos", "1e+2", []Token{NumToken(100, 1)}},
		{"neg", "-5", []Token{NumToken(-5, 1)}},
		{"neg-paren", "(-5)", []Token{OpToken(OpLParen, 1), NumToken(-5, 2), OpToken(OpRParen, 4)}},
		// identifiers
		{"ident", "x", []Token{VarToken("x", 1)}},
		{"ident-digits", "x_1", []Token{VarToken("x_1", 1)}},
		{"ident-under", "_", []Token{VarToken("_", 1)}},
		{"ident-unicode", "π2", []Token{VarToken("π2", 1)}},
		{"ident-case", "Ab aB", []Token{VarToken("Ab", 1), VarToken("aB", 4)}},
		// operators
		{"add", "2 + 2", []Token{NumToken(2, 1), OpToken(OpAdd, 3), NumToken(2, 5)}},
		{"sub", "9 - 6", []Token{NumToken(9, 1), OpToken(OpSub, 3), NumToken(6, 5)}},
		{"sub-end", "9 -", []Token{NumToken(9, 1), OpToken(OpSub, 3)}},
		{"sub-neg", "3 - -2", []Token{NumToken(3, 1), OpToken(OpSub, 3), NumToken(-2, 5)}},
		{"sub-ident", "a-b", []Token{VarToken("a", 1), OpToken(OpSub, 2), VarToken("b", 3)}},
		{"sub-paren", "-(1)", []Token{OpToken(OpSub, 1), OpToken(OpLParen, 2), NumToken(1, 3), OpToken(OpRParen, 4)}},
		{"neg-literal", "a -1", []Token{VarToken("a", 1), NumToken(-1, 3)}},
		{"mul-div", "4*5/6", []Token{NumToken(4, 1), OpToken(OpMul, 2), NumToken(5, 3), OpToken(OpDiv, 4), NumToken(6, 5)}},
		{"parens", "3 * (2 + 4)", []Token{
			NumToken(3, 1), OpToken(OpMul, 3), OpToken(OpLParen, 5), NumToken(2, 6),
			OpToken(OpAdd, 8), NumToken(4, 10), OpToken(OpRParen, 11),
		}},
		{"ident-paren", "(x)", []Token{OpToken(OpLParen, 1), VarToken("x", 2), OpToken(OpRParen, 3)}},
		// assignment
		{"assign", "x = 9000 + 1", []Token{
			VarToken("x", 1), AssignToken(3), NumToken(9000, 5), OpToken(OpAdd, 10), NumToken(1, 12),
		}},
		{"assign-tight", "foo=2", []Token{VarToken("foo", 1), AssignToken(4), NumToken(2, 5)}},
		{"assign-neg", "x=-1", []Token{VarToken("x", 1), AssignToken(2), NumToken(-1, 3)}},
		{"assign-num", "1=x", []Token{NumToken(1, 1), AssignToken(2), VarToken("x", 3)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := TokenizeString(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: %v", c.src, err)
			}
			if len(toks) != len(c.tokens) {
				t.Fatalf("tokenizing %q: want %v, got %v", c.src, c.tokens, toks)
			}
			for i, want := range c.tokens {
				if toks[i] != want {
					t.Errorf("tokenizing %q: token %d: want %v, got %v", c.src, i, want, toks[i])
				}
			}
		})
	}
}

func TestTokenizeDigits(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"1", 1},
		{"42", 42},
		{"007", 7},
		{"123456789", 123456789},
		{"18446744073709551616", 18446744073709551616},
		{strings.Repeat("9", 400), math.Inf(1)},
		{strings.Repeat("1", 400), math.Inf(1)},
	}
	for _, c := range cases {
		toks, err := TokenizeString(c.src)
		if err != nil {
			t.Errorf("tokenizing %q: %v", c.src, err)
			continue
		}
		if len(toks) != 1 || toks[0] != NumToken(c.want, 1) {
			t.Errorf("tokenizing %q: want [%v], got %v", c.src, NumToken(c.want, 1), toks)
		}
	}
}

func TestTokenizeRange(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1e999", math.Inf(1)},
		{"-1e999", math.Inf(-1)},
		{"1e-999", 0},
	}
	for _, c := range cases {
		toks, err := TokenizeString(c.src)
		if err != nil {
			t.Errorf("tokenizing %q: %v", c.src, err)
			continue
		}
		if len(toks) != 1 || toks[0] != NumToken(c.want, 1) {
			t.Errorf("tokenizing %q: want [%v], got %v", c.src, NumToken(c.want, 1), toks)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		char rune
		num  string
		col  int
	}{
		{"dollar", "$", '$', "", 1},
		{"ident-dollar", "a$", '$', "", 2},
		{"late", "1 + 2 $ 3", '$', "", 7},
		{"comma", ", 1", ',', "", 1},
		{"pow-disabled", "2 ^ 3", '^', "", 3},
		{"ident-dot", "a.b", '.', "", 2},
		{"num-letter", "1a", 0, "1a", 1},
		{"num-dots", "1.2.3", 0, "1.2.3", 1},
		{"num-neg", "x = -1x", 0, "-1x", 5},
		{"num-exp", "2e", 0, "2e", 1},
		{"num-hex", "0x1p4", 0, "0x1p4", 1},
		{"num-hex-under", "0x_1p4", 0, "0x_1p4", 1},
		{"num-under", "1_000", 0, "1_000", 1},
		{"num-hex-int", "0x10", 0, "0x10", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := TokenizeString(c.src)
			if err == nil {
				t.Fatalf("tokenizing %q: expected error, got %v", c.src, toks)
			}
			if toks != nil {
				t.Errorf("tokenizing %q: partial result %v", c.src, toks)
			}
			var ie InputError
			if !errors.As(err, &ie) || ie.Pos() != c.col {
				t.Errorf("tokenizing %q: want error at %d, got %v", c.src, c.col, err)
			}
			if c.num == "" {
				var ce *CharError
				if !errors.As(err, &ce) {
					t.Fatalf("tokenizing %q: want *CharError, got %#v", c.src, err)
				}
				if ce.Char != c.char {
					t.Errorf("tokenizing %q: want char %q, got %q", c.src, c.char, ce.Char)
				}
				return
			}
			var ne *NumError
			if !errors.As(err, &ne) {
				t.Fatalf("tokenizing %q: want *NumError, got %#v", c.src, err)
			}
			if ne.Text != c.num {
				t.Errorf("tokenizing %q: want text %q, got %q", c.src, c.num, ne.Text)
			}
			var se *strconv.NumError
			if !errors.As(err, &se) {
				t.Errorf("tokenizing %q: %v doesn't unwrap to *strconv.NumError", c.src, err)
			}
		})
	}
}

func TestTokenizePow(t *testing.T) {
	toks, err := TokenizeString("2^3", AllowPow())
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{NumToken(2, 1), OpToken(OpPow, 2), NumToken(3, 3)}
	if len(toks) != len(want) {
		t.Fatalf("want %v, got %v", want, toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d: want %v, got %v", i, want[i], toks[i])
		}
	}
}

func TestOperators(t *testing.T) {
	for _, r := range Operators {
		op := opFor(r)
		if !op.Infix() {
			t.Errorf("%c is not infix", r)
		}
		if op.String() != string(r) {
			t.Errorf("%c formats as %q", r, op.String())
		}
	}
	precs := map[Operator]int{OpAdd: 1, OpSub: 1, OpMul: 2, OpDiv: 2, OpPow: 3, OpLParen: 0, OpRParen: 0}
	for op, p := range precs {
		if op.Prec() != p {
			t.Errorf("%v has precedence %d, want %d", op, op.Prec(), p)
		}
	}
	if OpLParen.Infix() || OpRParen.Infix() {
		t.Error("parentheses are infix")
	}
}

func TestFormatTokens(t *testing.T) {
	toks, err := TokenizeString("x = 3 * (y - -2.5)")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := FormatTokens(toks), "x = 3 * ( y - -2.5 )"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}
