// Package shell reads line commands, applies them to a task tree and
// renders the tree after each one.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nibzard/tasktree/internal/todo"
)

// ErrMissingArgument reports a required token absent from a command line.
var ErrMissingArgument = errors.New("missing argument")

// ArgumentError names the command and the argument that was missing.
type ArgumentError struct {
	Command  string
	Argument string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.Command, e.Argument)
}

// Unwrap returns ErrMissingArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrMissingArgument
}

// Kind identifies a command.
type Kind int

const (
	KindUnknown Kind = iota
	KindAdd
	KindAddSub
	KindCheck
	KindUncheck
	KindDelete
	KindHelp
	KindExit
)

var kindNames = map[Kind]string{
	KindUnknown: "unknown",
	KindAdd:     "add",
	KindAddSub:  "addsub",
	KindCheck:   "check",
	KindUncheck: "uncheck",
	KindDelete:  "delete",
	KindHelp:    "help",
	KindExit:    "exit",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		if k != KindUnknown {
			m[name] = k
		}
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// usage lines, also used by the help text.
var usages = map[Kind]string{
	KindAdd:     "add <name> [due] [description]",
	KindAddSub:  "addsub <path> <name> [due] [description]",
	KindCheck:   "check <path>",
	KindUncheck: "uncheck <path>",
	KindDelete:  "delete <path>",
	KindHelp:    "help",
	KindExit:    "exit",
}

// Usage returns the usage line for k, or "" for KindUnknown.
func (k Kind) Usage() string {
	return usages[k]
}

// Command is a parsed command line.
type Command struct {
	Kind Kind
	// Word is the first token as typed.
	Word string
	// Path is set for addsub, check, uncheck and delete.
	Path todo.Path
	// RawPath is the path token as typed.
	RawPath     string
	Name        string
	Due         string
	Description string
}

// Tokenize splits a line on whitespace. Quoting is not supported, so a
// multi-word name spills into the due and description fields.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Parse builds a Command from tokens. Required tokens are checked before
// the path is parsed, so "addsub 1.x" reports the missing name.
// Unrecognized commands parse to KindUnknown without error. Tokens past
// the description are ignored.
func Parse(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return Command{}, nil
	}

	word := tokens[0]
	args := tokens[1:]
	kind, ok := kindsByName[word]
	if !ok {
		return Command{Kind: KindUnknown, Word: word}, nil
	}
	cmd := Command{Kind: kind, Word: word}

	switch kind {
	case KindAdd:
		if len(args) < 1 {
			return cmd, &ArgumentError{Command: word, Argument: "<name>"}
		}
		cmd.Name = args[0]
		cmd.Due = arg(args, 1)
		cmd.Description = arg(args, 2)

	case KindAddSub:
		if len(args) < 1 {
			return cmd, &ArgumentError{Command: word, Argument: "<path>"}
		}
		if len(args) < 2 {
			return cmd, &ArgumentError{Command: word, Argument: "<name>"}
		}
		cmd.RawPath = args[0]
		cmd.Name = args[1]
		cmd.Due = arg(args, 2)
		cmd.Description = arg(args, 3)

	case KindCheck, KindUncheck, KindDelete:
		if len(args) < 1 {
			return cmd, &ArgumentError{Command: word, Argument: "<path>"}
		}
		cmd.RawPath = args[0]
	}

	if cmd.RawPath != "" {
		path, err := todo.ParsePath(cmd.RawPath)
		if err != nil {
			return cmd, err
		}
		cmd.Path = path
	}
	return cmd, nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// HelpText lists every command.
func HelpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, k := range []Kind{KindAdd, KindAddSub, KindCheck, KindUncheck, KindDelete, KindHelp, KindExit} {
		fmt.Fprintf(&b, "  %-42s %s\n", k.Usage(), helpSummaries[k])
	}
	b.WriteString("Paths are dot-separated positions, e.g. 2.1.3 is the third sub-task\n")
	b.WriteString("of the first sub-task of the second task.\n")
	return b.String()
}

var helpSummaries = map[Kind]string{
	KindAdd:     "Add a top-level task",
	KindAddSub:  "Add a sub-task under <path>",
	KindCheck:   "Mark a task complete",
	KindUncheck: "Mark a task incomplete",
	KindDelete:  "Delete a task and its sub-tasks",
	KindHelp:    "Show this help",
	KindExit:    "Quit",
}
