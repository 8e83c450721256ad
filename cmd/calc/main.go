package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"

	"github.com/zephyrtronium/calc"
)

const usage = `usage: calc [-cev] [-f fmt] [-g name=value]... [-p bits] [expression...]
  -c        define pi and e
  -e        print the tokens of each expression
  -f fmt    result formatting string (default %g)
  -g n=v    variable definition (any number of times)
  -p bits   enable ^ with bits of precision (0 for the default)
  -v        log evaluation steps
With expression arguments, evaluate them joined by spaces. Otherwise read
expressions from stdin, one line at a time. A line may hold several
expressions separated by ;.`

type given struct {
	name, val string
}

func main() {
	var (
		verb  = "%g"
		with  []given
		echo  bool
		copts []calc.Option
	)
	opts, optind, err := getopt.Getopts(os.Args, "cef:g:p:v")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		io.WriteString(os.Stderr, usage+"\n")
		os.Exit(2)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			copts = append(copts, calc.Consts())
		case 'e':
			echo = true
		case 'f':
			verb = opt.Value
		case 'g':
			d := strings.SplitN(opt.Value, "=", 2)
			if len(d) != 2 {
				log.Fatalf(`variable definitions must be "name=value", not %q`, opt.Value)
			}
			with = append(with, given{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		case 'p':
			prec, err := strconv.ParseUint(opt.Value, 10, 0)
			if err != nil {
				log.Fatalf("invalid precision %q: %v", opt.Value, err)
			}
			copts = append(copts, calc.Pow(uint(prec)))
		case 'v':
			log.SetLogLevel(log.Verbose)
		}
	}
	c := calc.NewCalc(copts...)
	for _, d := range with {
		// Evaluate in a copy so that definitions don't set ans.
		r, err := c.Clone().Eval(d.val)
		if err != nil {
			log.Fatalf("setting %s: %v", d.name, err)
		}
		c.Set(d.name, r)
	}

	s := newSession(c, verb, echo)
	if args := os.Args[optind:]; len(args) != 0 {
		// Arguments are one expression line, as if typed at the prompt.
		s.line(os.Stdout, strings.Join(args, " "))
		return
	}
	if err := s.run(os.Stdin, os.Stdout); err != nil && err != io.EOF {
		log.Fatalf("reading input: %v", err)
	}
}
