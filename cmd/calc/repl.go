package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

// session evaluates lines of input with one calculator.
type session struct {
	calc *calc.Calc
	// verb is the format for results, including the newline.
	verb string
	echo bool
	errc *color.Color
}

func newSession(c *calc.Calc, verb string, echo bool) *session {
	return &session{
		calc: c,
		verb: verb + "\n",
		echo: echo,
		errc: color.New(color.FgRed),
	}
}

// line evaluates each ;-separated expression in text and writes the results
// or errors to w. Errors never end the session.
func (s *session) line(w io.Writer, text string) {
	for _, expr := range strings.Split(text, ";") {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}
		if s.echo {
			toks, err := calc.TokenizeString(expr, s.calc.LexOptions()...)
			if err == nil {
				fmt.Fprintf(w, "%s : ", calc.FormatTokens(toks))
			}
		}
		r, err := s.calc.Eval(expr)
		if err != nil {
			fmt.Fprintln(w, s.errc.Sprint(err))
			continue
		}
		fmt.Fprintf(w, s.verb, r)
	}
}

// run reads expressions from in until EOF. If in is a terminal, it provides
// a prompt with line editing and history.
func (s *session) run(in, out *os.File) error {
	color.NoColor = !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd())
	if !term.IsTerminal(int(in.Fd())) {
		return s.lines(in, out)
	}
	return s.repl(in, out)
}

// lines evaluates each line of in. Lines may be any length.
func (s *session) lines(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	for {
		text, err := r.ReadString('\n')
		if text != "" {
			s.line(out, strings.TrimSuffix(text, "\n"))
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// repl runs an interactive prompt on a terminal.
func (s *session) repl(in, out *os.File) error {
	fd := int(in.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		log.Errf("failed to set raw mode: %v", err)
		return s.lines(in, out)
	}
	defer term.Restore(fd, old)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, "> ")
	for {
		text, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		s.line(t, text)
	}
}
