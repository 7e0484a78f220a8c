// Package prompt asks the user for the single go/no-go answer before
// anything is moved to the trash.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
)

// Confirmer answers the one confirmation question of a run.
type Confirmer interface {
	// Confirm asks a yes/no question and reports the answer. Only an
	// explicit yes proceeds; end of input and interrupts decline
	// without error.
	Confirm(question string) (bool, error)
}

// AutoConfirmer approves without asking. It backs the --yes flag.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string) (bool, error) {
	return true, nil
}

// TerminalConfirmer prompts on Out and reads one line from In. The
// zero value uses stdin and stdout.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints the question with a [y/N] suffix and reads the reply.
// The answer is affirmative only when the trimmed, lowercased line is
// exactly "y". Ctrl+C and a closed stdin count as "no" so the caller
// can still run its teardown.
func (c *TerminalConfirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.out(), "%s [y/N]: ", question)

	// When an interrupt wins the select below, the reader goroutine
	// stays parked on In. That leak is deliberate: a blocked stdin
	// read cannot be cancelled portably, and the channels are
	// buffered so the goroutine can still finish and be collected.
	lines := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		line, err := bufio.NewReader(c.in()).ReadString('\n')
		if err != nil && line == "" {
			errs <- err
			return
		}
		lines <- line
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	select {
	case line := <-lines:
		return strings.TrimSpace(strings.ToLower(line)) == "y", nil
	case err := <-errs:
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out())
			return false, nil
		}
		return false, err
	case <-interrupt:
		fmt.Fprintln(c.out())
		return false, nil
	}
}

func (c *TerminalConfirmer) in() io.Reader {
	if c.In != nil {
		return c.In
	}
	return os.Stdin
}

func (c *TerminalConfirmer) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}
