// Package terminal is for terminal input and outputting
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

type Terminal struct {
	in      io.Reader
	scanner *bufio.Scanner

	out     io.Writer
	verbose io.Writer
	err     io.Writer

	Green  func(format string, a ...interface{}) string
	Yellow func(format string, a ...interface{}) string
	Red    func(format string, a ...interface{}) string
	Blue   func(format string, a ...interface{}) string
}

func New() (t *Terminal) {
	return NewFromStreams(os.Stdin, os.Stdout, os.Stderr)
}

func NewFromStreams(in io.Reader, out io.Writer, err io.Writer) *Terminal {
	return &Terminal{
		in:      in,
		out:     out,
		verbose: out,
		err:     err,
		Green:   color.New(color.FgGreen).SprintfFunc(),
		Yellow:  color.New(color.FgYellow).SprintfFunc(),
		Red:     color.New(color.FgRed).SprintfFunc(),
		Blue:    color.New(color.FgBlue).SprintfFunc(),
	}
}

func (t *Terminal) Print(a string) {
	fmt.Fprintln(t.out, a)
}

func (t *Terminal) Printf(format string, a ...interface{}) {
	fmt.Fprintf(t.out, format, a...)
}

func (t *Terminal) Vprint(a string) {
	fmt.Fprintln(t.verbose, a)
}

func (t *Terminal) Vprintf(format string, a ...interface{}) {
	fmt.Fprintf(t.verbose, format, a...)
}

func (t *Terminal) Eprint(a string) {
	fmt.Fprintln(t.err, a)
}

func (t *Terminal) Eprintf(format string, a ...interface{}) {
	fmt.Fprintf(t.err, format, a...)
}

func (t *Terminal) Errprint(err error, a string) {
	t.Eprint(t.Red("Error: " + err.Error()))
	if a != "" {
		t.Eprint(t.Red(a))
	}
	if vErr, ok := err.(vmerrors.VManageError); ok {
		t.Eprint(t.Yellow(vErr.Directive()))
	}
}

// readLine reads one line from the terminal's input. The scanner is shared
// so back-to-back prompts in one run do not lose buffered input.
func (t *Terminal) readLine() (string, error) {
	if t.scanner == nil {
		t.scanner = bufio.NewScanner(t.in)
	}
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", vmerrors.WrapAndTrace(err)
		}
		return "", vmerrors.WrapAndTrace(io.EOF, "input closed")
	}
	return t.scanner.Text(), nil
}

func (t *Terminal) NewSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(t.err))
}
