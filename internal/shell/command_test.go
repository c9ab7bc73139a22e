package shell

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/nibzard/tasktree/internal/todo"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   \t ", nil},
		{"add Clean", []string{"add", "Clean"}},
		{"  add   Buy eggs\t2024-01-01 ", []string{"add", "Buy", "eggs", "2024-01-01"}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.line)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{
			name: "add name only",
			line: "add Clean",
			want: Command{Kind: KindAdd, Word: "add", Name: "Clean"},
		},
		{
			name: "add all fields",
			line: "add Clean today kitchen",
			want: Command{Kind: KindAdd, Word: "add", Name: "Clean", Due: "today", Description: "kitchen"},
		},
		{
			name: "add multi-word name spills",
			line: "add Buy eggs 2024-01-01",
			want: Command{Kind: KindAdd, Word: "add", Name: "Buy", Due: "eggs", Description: "2024-01-01"},
		},
		{
			name: "add extra tokens ignored",
			line: "add a b c d e",
			want: Command{Kind: KindAdd, Word: "add", Name: "a", Due: "b", Description: "c"},
		},
		{
			name: "addsub",
			line: "addsub 2.1 Kitchen tomorrow",
			want: Command{Kind: KindAddSub, Word: "addsub", Path: todo.Path{1, 0}, RawPath: "2.1", Name: "Kitchen", Due: "tomorrow"},
		},
		{
			name: "check",
			line: "check 1.1",
			want: Command{Kind: KindCheck, Word: "check", Path: todo.Path{0, 0}, RawPath: "1.1"},
		},
		{
			name: "uncheck",
			line: "uncheck 3",
			want: Command{Kind: KindUncheck, Word: "uncheck", Path: todo.Path{2}, RawPath: "3"},
		},
		{
			name: "delete",
			line: "delete 1",
			want: Command{Kind: KindDelete, Word: "delete", Path: todo.Path{0}, RawPath: "1"},
		},
		{
			name: "help",
			line: "help me",
			want: Command{Kind: KindHelp, Word: "help"},
		},
		{
			name: "exit",
			line: "exit",
			want: Command{Kind: KindExit, Word: "exit"},
		},
		{
			name: "unknown",
			line: "frobnicate 1",
			want: Command{Kind: KindUnknown, Word: "frobnicate"},
		},
		{
			name: "case sensitive",
			line: "ADD Clean",
			want: Command{Kind: KindUnknown, Word: "ADD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(Tokenize(tt.line))
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.line, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseMissingArgument(t *testing.T) {
	tests := []struct {
		line     string
		argument string
	}{
		{"add", "<name>"},
		{"addsub", "<path>"},
		{"addsub 1", "<name>"},
		{"addsub 1.x", "<name>"},
		{"check", "<path>"},
		{"uncheck", "<path>"},
		{"delete", "<path>"},
	}
	for _, tt := range tests {
		_, err := Parse(Tokenize(tt.line))
		if !errors.Is(err, ErrMissingArgument) {
			t.Errorf("Parse(%q) error = %v, want ErrMissingArgument", tt.line, err)
			continue
		}
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("Parse(%q) error %T is not *ArgumentError", tt.line, err)
		}
		if argErr.Argument != tt.argument {
			t.Errorf("Parse(%q) argument = %q, want %q", tt.line, argErr.Argument, tt.argument)
		}
	}
}

func TestParseInvalidPath(t *testing.T) {
	for _, line := range []string{"check 1.x", "delete 0", "uncheck -1", "addsub 1..2 Kitchen", "check 1."} {
		_, err := Parse(Tokenize(line))
		if !errors.Is(err, todo.ErrInvalidPath) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidPath", line, err)
		}
	}
}

func TestArgumentErrorMessage(t *testing.T) {
	err := &ArgumentError{Command: "addsub", Argument: "<name>"}
	if got, want := err.Error(), "addsub: missing <name>"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	if got := KindAddSub.String(); got != "addsub" {
		t.Errorf("KindAddSub.String() = %q", got)
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}

func TestHelpTextListsCommands(t *testing.T) {
	help := HelpText()
	for _, k := range []Kind{KindAdd, KindAddSub, KindCheck, KindUncheck, KindDelete, KindHelp, KindExit} {
		if !strings.Contains(help, k.Usage()) {
			t.Errorf("help text missing %q", k.Usage())
		}
	}
}
