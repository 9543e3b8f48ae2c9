package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"

	"github.com/zephyrtronium/symexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, wrt string
		with              [][2]string
		post, simp, eval  bool
		echo, dump        bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition for x, y, or z (any number of times)", addwith)
	flag.BoolVar(&post, "postfix", false, "use postfix notation instead of prefix")
	flag.StringVar(&wrt, "d", "", "differentiate with respect to a variable")
	flag.BoolVar(&simp, "s", false, "simplify")
	flag.BoolVar(&eval, "eval", false, "evaluate even after -d or -s")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&dump, "dump", false, "dump the internal structure of parse trees")
	flag.Parse()

	notation := symexpr.Prefix
	if post {
		notation = symexpr.Postfix
	}
	if wrt != "" && !isvar(wrt) {
		log.Fatalf("cannot differentiate with respect to %q", wrt)
	}
	var b symexpr.Bindings
	for _, d := range with {
		nm, vl := d[0], d[1]
		if !isvar(nm) {
			log.Fatalf("setting %s: no such variable", nm)
		}
		r, err := strconv.ParseFloat(vl, 64)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		b[symexpr.Var(nm).Slot()] = r
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s := bufio.NewScanner(f)
		for s.Scan() {
			if strings.TrimSpace(s.Text()) == "" {
				continue
			}
			srcs = append(srcs, s.Text())
		}
		if err := s.Err(); err != nil {
			log.Fatal(err)
		}
	}
	srcs = append(srcs, flag.Args()...)

	var p []symexpr.Expr
	for _, src := range srcs {
		a, err := symexpr.ParseString(src, notation)
		if err != nil {
			log.Fatal(err)
		}
		p = append(p, a)
	}

	verb += "\n"
	for _, a := range p {
		if echo {
			fmt.Printf("%s : ", notation.Format(a))
		}
		if wrt != "" {
			a = a.Diff(wrt)
		}
		if simp {
			a = a.Simplify()
		}
		if dump {
			fmt.Println(pretty.Sprint(a))
		}
		if (wrt != "" || simp) && !eval {
			fmt.Println(notation.Format(a))
			continue
		}
		fmt.Printf(verb, a.Eval(b))
	}
}

func isvar(name string) bool {
	return name == "x" || name == "y" || name == "z"
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
