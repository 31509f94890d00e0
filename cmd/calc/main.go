package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kdlibiran/gradecalculator/app/calculator"
)

func main() {
	expr := flag.String("e", "", "evaluate a single expression and exit")
	flag.Parse()

	if *expr != "" {
		v, err := calculator.Eval(*expr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(calculator.Format(v))
		return
	}

	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run evaluates one expression per line until EOF. Bad lines print an error
// and do not stop the loop.
func run(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := calculator.Eval(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, calculator.Format(v))
	}
	return sc.Err()
}
