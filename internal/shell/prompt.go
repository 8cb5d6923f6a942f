package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/exptrack/internal/cli"

	"github.com/charmbracelet/huh"
)

// MenuItem is one selectable menu action.
type MenuItem struct {
	Key   string
	Label string
}

// Question describes a single free-text prompt.
type Question struct {
	Title       string
	Placeholder string
	// Validate, when set, lets a prompter reject input before returning it.
	Validate func(string) error
}

// Prompter collects user input. Both methods return io.EOF once the user has
// closed input or aborted.
type Prompter interface {
	Choose(title string, items []MenuItem) (string, error)
	Ask(q Question) (string, error)
}

// LinePrompter reads newline-terminated answers from a plain text stream.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompter returns a prompter reading from r and echoing prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

// Choose prints the numbered menu and returns the raw answer, which may not
// match any item.
func (p *LinePrompter) Choose(title string, items []MenuItem) (string, error) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, cli.Header(title))
	for _, it := range items {
		fmt.Fprintf(p.w, "%s. %s\n", it.Key, it.Label)
	}
	fmt.Fprint(p.w, "Enter your choice: ")
	return p.readLine()
}

// Ask prints the question and returns the trimmed answer. Validation is left
// to the caller.
func (p *LinePrompter) Ask(q Question) (string, error) {
	fmt.Fprintf(p.w, "%s: ", q.Title)
	return p.readLine()
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// FormPrompter asks through huh forms: an arrow-key menu and text inputs with
// inline validation.
type FormPrompter struct {
	Accessible bool
	Input      io.Reader
	Output     io.Writer
}

// Choose shows a select list and returns the chosen item key.
func (p FormPrompter) Choose(title string, items []MenuItem) (string, error) {
	var choice string
	opts := make([]huh.Option[string], 0, len(items))
	for _, it := range items {
		opts = append(opts, huh.NewOption(it.Label, it.Key))
	}

	sel := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&choice)
	if err := p.run(huh.NewGroup(sel)); err != nil {
		return "", err
	}
	return choice, nil
}

// Ask shows a text input. Validation runs inside the form, so the user is
// re-prompted in place.
func (p FormPrompter) Ask(q Question) (string, error) {
	var answer string
	in := huh.NewInput().
		Title(q.Title).
		Placeholder(q.Placeholder).
		Value(&answer)
	if q.Validate != nil {
		in = in.Validate(q.Validate)
	}
	if err := p.run(huh.NewGroup(in)); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (p FormPrompter) run(group *huh.Group) error {
	form := huh.NewForm(group).WithAccessible(p.Accessible)
	if p.Input != nil {
		form = form.WithInput(p.Input)
	}
	if p.Output != nil {
		form = form.WithOutput(p.Output)
	}

	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return io.EOF
	}
	return err
}
