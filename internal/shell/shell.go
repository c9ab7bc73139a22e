package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasktree/internal/config"
	"github.com/nibzard/tasktree/internal/logging"
	"github.com/nibzard/tasktree/internal/table"
	"github.com/nibzard/tasktree/internal/todo"
)

// MaxLineLength is the longest command line accepted, in bytes. Longer
// lines are reported and skipped without ending the loop.
const MaxLineLength = 1024 * 1024

// Outcome is the result of handling one input line.
type Outcome struct {
	// Command is the parsed command. Zero for blank lines.
	Command Command
	// Message is shown to the user before the table. Empty when silent.
	Message string
	// Err is the error raised while parsing or applying the command.
	Err error
	// Blank is set for lines with no tokens; nothing is rendered.
	Blank bool
	// Quit is set by exit.
	Quit bool
}

// Shell owns a task tree and applies commands to it.
type Shell struct {
	tree   *todo.Tree
	cfg    *config.Config
	logger *log.Logger
}

// New creates a shell over an empty tree. A nil cfg uses the defaults and a
// nil logger discards.
func New(cfg *config.Config, logger *log.Logger) *Shell {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Shell{
		tree:   &todo.Tree{},
		cfg:    cfg,
		logger: logger,
	}
}

// Tree returns the tree the shell edits.
func (s *Shell) Tree() *todo.Tree {
	return s.tree
}

// Config returns the shell's configuration.
func (s *Shell) Config() *config.Config {
	return s.cfg
}

// Execute applies cmd to the tree. Deleting a missing task returns an
// error wrapping todo.ErrNotFound and leaves the tree unchanged.
func (s *Shell) Execute(cmd Command) error {
	switch cmd.Kind {
	case KindAdd:
		path, err := s.tree.Add(nil, cmd.Name, cmd.Due, cmd.Description)
		if err != nil {
			return err
		}
		s.logger.Debug("added task", "path", path, "name", cmd.Name)
	case KindAddSub:
		path, err := s.tree.Add(cmd.Path, cmd.Name, cmd.Due, cmd.Description)
		if err != nil {
			return err
		}
		s.logger.Debug("added sub-task", "path", path, "name", cmd.Name)
	case KindCheck, KindUncheck:
		done := cmd.Kind == KindCheck
		if err := s.tree.SetStatus(cmd.Path, done); err != nil {
			return err
		}
		s.logger.Debug("set status", "path", cmd.Path, "done", done)
	case KindDelete:
		if !s.tree.Delete(cmd.Path) {
			return &todo.PathError{Path: cmd.RawPath, Err: todo.ErrNotFound}
		}
		s.logger.Debug("deleted task", "path", cmd.Path)
	}
	return nil
}

// Handle parses and applies one input line.
func (s *Shell) Handle(line string) Outcome {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Outcome{Blank: true}
	}

	cmd, err := Parse(tokens)
	out := Outcome{Command: cmd}
	if err == nil {
		switch cmd.Kind {
		case KindExit:
			out.Quit = true
			return out
		case KindHelp:
			out.Message = HelpText()
			return out
		case KindUnknown:
			s.logger.Debug("unknown command", "command", cmd.Word)
			return out
		}
		err = s.Execute(cmd)
	}
	if err == nil {
		return out
	}

	out.Err = err
	var argErr *ArgumentError
	switch {
	case errors.As(err, &argErr):
		out.Message = fmt.Sprintf("Missing %s. Usage: %s", argErr.Argument, cmd.Kind.Usage())
	case errors.Is(err, todo.ErrInvalidPath):
		out.Message = fmt.Sprintf("Invalid path %q. Use dot-separated positions such as 2.1.", cmd.RawPath)
	case errors.Is(err, todo.ErrEmptyName):
		out.Message = "Task name must not be empty."
	case errors.Is(err, todo.ErrNotFound):
		// No task at that position; the table is shown unchanged.
		s.logger.Debug("no task at path", "command", cmd.Kind, "path", cmd.RawPath)
	default:
		s.logger.Warn("command failed", "command", cmd.Kind, "err", err)
		out.Message = err.Error()
	}
	return out
}

// Run reads commands from in until exit, end of input or ctx is done. The
// tree is rendered to out after every non-blank line. The farewell is
// written on exit and at end of input; a cancelled ctx returns ctx.Err()
// without it.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	defer w.Flush()
	styles := NewStyles(out, s.cfg.Color)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := readLines(ctx, in)
	for {
		fmt.Fprint(w, styles.Prompt(s.cfg.Prompt))
		if err := w.Flush(); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		var line inputLine
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := <-readErr; err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, styles.Farewell(s.cfg.Farewell))
			s.logger.Debug("end of input")
			return nil
		}

		if line.tooLong {
			s.logger.Warn("line too long", "max", MaxLineLength)
			fmt.Fprintln(w, styles.Message(fmt.Sprintf("Line longer than %d bytes ignored.", MaxLineLength)))
			if err := table.Render(w, s.tree.Tasks); err != nil {
				return fmt.Errorf("render table: %w", err)
			}
			continue
		}

		outcome := s.Handle(line.text)
		if outcome.Quit {
			fmt.Fprintln(w, styles.Farewell(s.cfg.Farewell))
			return nil
		}
		if outcome.Blank {
			continue
		}
		if outcome.Message != "" {
			fmt.Fprintln(w, styles.Message(outcome.Message))
		}
		if err := table.Render(w, s.tree.Tasks); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
}

type inputLine struct {
	text    string
	tooLong bool
}

// readLines feeds lines from in to a channel so Run can stop on ctx while
// a read is blocked. The channel is closed at end of input; the error
// channel then yields the read error, if any.
func readLines(ctx context.Context, in io.Reader) (<-chan inputLine, <-chan error) {
	lines := make(chan inputLine)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			line, err := readLine(r)
			if err == io.EOF {
				return
			}
			if err != nil {
				errc <- err
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines, errc
}

// readLine reads one line without its "\n" or "\r\n" ending. A final line
// without a newline is returned before io.EOF. Lines over MaxLineLength are
// drained and flagged instead of buffered.
func readLine(r *bufio.Reader) (inputLine, error) {
	var line inputLine
	var buf []byte
	for {
		chunk, err := r.ReadSlice('\n')
		if !line.tooLong {
			buf = append(buf, chunk...)
			if len(buf) > MaxLineLength+len("\r\n") {
				line.tooLong = true
				buf = nil
			}
		}
		switch {
		case err == bufio.ErrBufferFull:
			continue
		case err == io.EOF && (len(buf) > 0 || line.tooLong):
		case err != nil:
			return inputLine{}, err
		}

		text := strings.TrimSuffix(strings.TrimSuffix(string(buf), "\n"), "\r")
		if len(text) > MaxLineLength {
			line.tooLong = true
		}
		if !line.tooLong {
			line.text = text
		}
		return line, nil
	}
}
