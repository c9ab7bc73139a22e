// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nibzard/tasktree/internal/config"
	"github.com/nibzard/tasktree/internal/table"
	"github.com/nibzard/tasktree/internal/todo"
)

// isolate points config discovery at empty temp directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, name := range []string{
		config.EnvPrompt, config.EnvFarewell, config.EnvColor, config.EnvLogLevel,
		config.EnvLogFormat, config.EnvLogFile, config.EnvLogTimestamps, config.EnvLogCaller,
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	work := t.TempDir()
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevDir) })
	return work
}

// execute runs the root command with stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRun(t *testing.T) {
	t.Run("shows help with --help flag", func(t *testing.T) {
		isolate(t)
		out, err := execute(t, "", "--help")
		if err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
		if !strings.Contains(out, "addsub <path> <name>") {
			t.Errorf("help missing command summary:\n%s", out)
		}
	})

	t.Run("shows version with --version flag", func(t *testing.T) {
		isolate(t)
		out, err := execute(t, "", "--version")
		if err != nil {
			t.Errorf("expected no error with --version, got %v", err)
		}
		if out != "tasktree version "+Version+"\n" {
			t.Errorf("version output = %q", out)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		isolate(t)
		_, err := execute(t, "", "unknown-command")
		if err == nil {
			t.Fatal("expected error for unknown command, got nil")
		}
		if !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' error, got %v", err)
		}
	})

	t.Run("invalid config fails", func(t *testing.T) {
		work := isolate(t)
		if err := os.WriteFile(filepath.Join(work, "tasktree.toml"), []byte("colour = true\n"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := execute(t, "exit\n")
		if err == nil || !strings.Contains(err.Error(), "loading config") {
			t.Errorf("expected config error, got %v", err)
		}
	})
}

func TestShellSession(t *testing.T) {
	isolate(t)
	out, err := execute(t, "add Clean\naddsub 1 Kitchen\ncheck 1.1\nexit\n")
	if err != nil {
		t.Fatalf("shell error: %v", err)
	}

	want := []todo.Task{{Name: "Clean", Children: []todo.Task{{Name: "Kitchen", Done: true}}}}
	if !strings.Contains(out, table.String(want)) {
		t.Errorf("output missing final table:\n%s", out)
	}
	if !strings.HasSuffix(out, ">>> "+config.DefaultFarewell+"\n") {
		t.Errorf("output does not end with farewell:\n%q", out)
	}
}

func TestShellFlagsOverride(t *testing.T) {
	isolate(t)
	out, err := execute(t, "exit\n", "--prompt", "todo> ")
	if err != nil {
		t.Fatalf("shell error: %v", err)
	}
	if want := "todo> " + config.DefaultFarewell + "\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestShellEnvFarewell(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvFarewell, "bye")
	out, err := execute(t, "")
	if err != nil {
		t.Fatalf("shell error: %v", err)
	}
	if want := ">>> \nbye\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestShellLogFile(t *testing.T) {
	work := isolate(t)
	logPath := filepath.Join(work, "logs", "tasktree.log")
	_, err := execute(t, "add A\nexit\n", "--log-file", logPath, "--log-level", "debug", "--log-format", "json")
	if err != nil {
		t.Fatalf("shell error: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{`"msg":"shell started"`, `"msg":"added task"`, `"session":`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %s:\n%s", want, data)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "tasktree version "+Version+"\n") {
		t.Errorf("version output = %q", out)
	}
}

func TestConfigCommand(t *testing.T) {
	t.Run("prints effective config", func(t *testing.T) {
		isolate(t)
		out, err := execute(t, "", "config", "--prompt", "$ ")
		if err != nil {
			t.Fatalf("config error: %v", err)
		}
		if !strings.Contains(out, `prompt = "$ "`) {
			t.Errorf("config output missing prompt:\n%s", out)
		}
	})

	t.Run("example", func(t *testing.T) {
		isolate(t)
		out, err := execute(t, "", "config", "--example")
		if err != nil {
			t.Fatalf("config --example error: %v", err)
		}
		if out != config.ExampleConfig() {
			t.Errorf("example output differs:\n%s", out)
		}
	})

	t.Run("sources", func(t *testing.T) {
		work := isolate(t)
		if err := os.WriteFile(filepath.Join(work, "tasktree.toml"), []byte("farewell = \"bye\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		out, err := execute(t, "", "config", "--sources", "--color")
		if err != nil {
			t.Fatalf("config --sources error: %v", err)
		}
		for _, want := range []string{"tasktree.toml", "farewell        project file", "color           flag", "prompt          default"} {
			if !strings.Contains(out, want) {
				t.Errorf("sources output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("validate", func(t *testing.T) {
		work := isolate(t)
		good := filepath.Join(work, "good.yaml")
		bad := filepath.Join(work, "bad.toml")
		if err := os.WriteFile(good, []byte("prompt: \"> \"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(bad, []byte("log_level = \"loud\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		out, err := execute(t, "", "config", "validate", good)
		if err != nil {
			t.Fatalf("validate good: %v", err)
		}
		if out != good+": ok\n" {
			t.Errorf("validate output = %q", out)
		}

		if _, err := execute(t, "", "config", "validate", bad); err == nil {
			t.Error("expected error for bad config")
		}
	})
}

func TestTUIRequiresTTY(t *testing.T) {
	isolate(t)
	_, err := execute(t, "", "tui")
	if err == nil || !strings.Contains(err.Error(), "TTY") {
		t.Errorf("expected TTY error, got %v", err)
	}
}
