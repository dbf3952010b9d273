package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/easypost-cli/internal/client/view"
	"github.com/dmitrijs2005/easypost-cli/internal/common"
	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints prompt to w verbatim and reads one line from reader.
// The line is trimmed. If EOF occurs after some input was read, the partial
// line is returned; EOF on an empty read is returned as io.EOF.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSecret reads a line without echo when in is a terminal and falls back
// to a plain line read otherwise (pipes, tests).
func GetSecret(in io.Reader, reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return GetSimpleText(reader, prompt, w)
	}

	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	b, err := readPassword(int(f.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(b)
	return strings.TrimSpace(string(b)), nil
}

// Console is the terminal the menu talks to. It satisfies session.Prompter.
type Console struct {
	in     io.Reader
	reader *bufio.Reader
	p      *view.Printer
}

// NewConsole reads from in and writes through p.
func NewConsole(in io.Reader, p *view.Printer) *Console {
	return &Console{in: in, reader: bufio.NewReader(in), p: p}
}

func (c *Console) ReadLine(prompt string) (string, error) {
	return GetSimpleText(c.reader, prompt, c.p.Writer())
}

func (c *Console) ReadSecret(prompt string) (string, error) {
	return GetSecret(c.in, c.reader, prompt, c.p.Writer())
}

// askRequired re-asks until the answer is not empty.
func (c *Console) askRequired(prompt string) (string, error) {
	for {
		v, err := c.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		c.p.Error("A value is required")
	}
}

// askPositive re-asks until the answer parses as a number above zero.
func (c *Console) askPositive(prompt string) (float64, error) {
	for {
		v, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		f, perr := strconv.ParseFloat(v, 64)
		if perr == nil && f > 0 {
			return f, nil
		}
		c.p.Error("Please enter a number greater than zero")
	}
}

// pickIndex parses s as an index into a list of n items.
func pickIndex(s string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

func isQuit(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "Q")
}
