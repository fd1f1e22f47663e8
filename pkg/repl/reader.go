package repl

import (
	"errors"
	"fmt"

	"github.com/chzyer/readline"
)

// ErrInterrupted reports that the user interrupted the line reader. End of
// input is reported as io.EOF. Any other read error means the input source
// itself is unusable and terminates the loop.
var ErrInterrupted = errors.New("interrupted")

// LineReader supplies one line of source per turn.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

type terminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader opens a line-editing reader on the terminal, with
// history persisted to the configured file when one is set.
func NewTerminalReader(cfg Config) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.History,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("repl: open terminal: %w", err)
	}
	return &terminalReader{rl: rl}, nil
}

func (r *terminalReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (r *terminalReader) Close() error {
	return r.rl.Close()
}
