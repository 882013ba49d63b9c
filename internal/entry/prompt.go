package entry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed indicates the input stream ended before the session did.
var ErrInputClosed = errors.New("input stream closed")

// Choice is the answer to a three-way continuation prompt.
type Choice int

const (
	ChoiceYes Choice = iota
	ChoiceNo
	ChoiceExit
)

// Prompter reads line-oriented answers and writes human-readable status
// output. Status markers use emoji on a terminal and plain prefixes
// otherwise, so piped output stays greppable.
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	emoji bool
}

// NewPrompter wraps an input stream and output writer.
func NewPrompter(in io.Reader, out io.Writer, emoji bool) *Prompter {
	return &Prompter{
		in:    bufio.NewScanner(in),
		out:   out,
		emoji: emoji,
	}
}

// Line prints a prompt label and returns the next input line, trimmed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Confirm asks a y/n question and reprompts until it gets one.
func (p *Prompter) Confirm(label string) (bool, error) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			p.Printf(`Invalid input. Please enter "y" or "n".`)
		}
	}
}

// Ask asks a y/n/exit question and reprompts until it gets one.
func (p *Prompter) Ask(label string) (Choice, error) {
	for {
		answer, err := p.Line(label)
		if err != nil {
			return ChoiceNo, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return ChoiceYes, nil
		case "n":
			return ChoiceNo, nil
		case "exit":
			return ChoiceExit, nil
		default:
			p.Printf(`Invalid input. Please enter "y", "n", or "exit".`)
		}
	}
}

// IntUntilValid prompts with label until parse accepts the input.
func (p *Prompter) IntUntilValid(label string, parse func(string) (int, error)) (int, error) {
	for {
		raw, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		value, parseErr := parse(raw)
		if parseErr != nil {
			p.Errorf("%s. Try again.", capitalize(parseErr.Error()))
			continue
		}
		return value, nil
	}
}

// Printf writes a plain status line.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Successf writes a success-marked status line.
func (p *Prompter) Successf(format string, args ...any) {
	p.marked("✅", "OK:", format, args...)
}

// Warnf writes a warning-marked status line.
func (p *Prompter) Warnf(format string, args ...any) {
	p.marked("⚠️", "Warning:", format, args...)
}

// Errorf writes an error-marked status line.
func (p *Prompter) Errorf(format string, args ...any) {
	p.marked("❌", "Error:", format, args...)
}

func (p *Prompter) marked(emoji, plain, format string, args ...any) {
	marker := plain
	if p.emoji {
		marker = emoji
	}
	fmt.Fprintf(p.out, "%s "+format+"\n", append([]any{marker}, args...)...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
