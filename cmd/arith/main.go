package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/arith"
)

// errFailed indicates that at least one expression did not evaluate. The
// individual errors have already been printed; main prints only the count.
var errFailed = errors.New("evaluation failed")

var errPrefix = color.New(color.FgRed, color.Bold)

// defaultDepth bounds parenthesis nesting unless --max-depth says otherwise,
// so that hostile input fails with an error instead of exhausting the stack.
const defaultDepth = 10000

func main() {
	log.SetFlags(0)
	os.Exit(exitCode(newRootCmd().Execute(), log.Default()))
}

// exitCode reports err, if any, through l and returns the exit status.
func exitCode(err error, l *log.Logger) int {
	if err == nil {
		return 0
	}
	l.Print(err)
	return 1
}

type options struct {
	inname, verb, space string
	trailing, echo      bool
	depth               int
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "arith [expression...]",
		Short: "Evaluate sums and products of decimal numbers",
		Long: `Arith evaluates expressions made of non-negative decimal numbers, + and *,
and parentheses. Multiplication binds tighter than addition.

Each argument is one expression. With --in, or with no arguments at all,
expressions are also read one per line from a file or standard input.
Every expression is evaluated even if an earlier one fails.

Examples:
  arith '2 + 3 * 4'
  arith --fmt %.2f '1.5 + 2.5 * 3'
  arith --space strict --in exprs.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.inname, "in", "", "input file with one expression per line, - for stdin (default stdin if no args given)")
	f.StringVar(&o.verb, "fmt", "%g", "result formatting string")
	f.StringVar(&o.space, "space", "strip", "whitespace handling: strip, skip, or strict")
	f.BoolVar(&o.trailing, "trailing", false, "ignore input after a complete expression")
	f.IntVar(&o.depth, "max-depth", defaultDepth, "maximum nesting of parentheses (0 for no limit)")
	f.BoolVar(&o.echo, "echo", false, "print each expression before its result")
	return cmd
}

func run(cmd *cobra.Command, args []string, o *options) error {
	ev, prep, err := o.evaluator()
	if err != nil {
		return err
	}
	srcs, err := o.inputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	in := make([]string, len(srcs))
	for i, src := range srcs {
		in[i] = prep(src)
	}

	out := cmd.OutOrStdout()
	verb := o.verb + "\n"
	failed := 0
	for i, r := range ev.EvalAll(in) {
		if o.echo {
			fmt.Fprintf(out, "%s : ", srcs[i])
		}
		if r.Err != nil {
			failed++
			fmt.Fprintln(out, errPrefix.Sprint("error:"), r.Err)
			continue
		}
		fmt.Fprintf(out, verb, r.Value)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions: %w", failed, len(srcs), errFailed)
	}
	return nil
}

// evaluator creates the evaluator for the options along with the function
// that prepares each input for it.
func (o *options) evaluator() (*arith.Evaluator, func(string) string, error) {
	if o.depth < 0 {
		return nil, nil, fmt.Errorf("max depth (%d) must not be negative", o.depth)
	}
	opts := []arith.Option{arith.MaxDepth(o.depth)}
	if o.trailing {
		opts = append(opts, arith.AllowTrailing())
	}
	prep := func(s string) string { return s }
	switch o.space {
	case "strip":
		prep = stripSpace
	case "skip":
		opts = append(opts, arith.SkipSpace())
	case "strict":
	default:
		return nil, nil, fmt.Errorf(`whitespace handling must be "strip", "skip", or "strict", not %q`, o.space)
	}
	return arith.New(opts...), prep, nil
}

// inputs collects expressions from the input file, if any, followed by the
// arguments.
func (o *options) inputs(stdin io.Reader, args []string) ([]string, error) {
	var srcs []string
	var f io.Reader
	switch {
	case o.inname != "" && o.inname != "-":
		in, err := os.Open(o.inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	case o.inname == "-", len(args) == 0:
		f = stdin
	}
	if f != nil {
		var err error
		srcs, err = readLines(bufio.NewReader(f))
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
	return append(srcs, args...), nil
}

// readLines reads every non-blank line from r. Lines may be any length.
func readLines(r *bufio.Reader) ([]string, error) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return nil, err
		}
	}
}

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
