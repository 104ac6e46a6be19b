package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pmcarmo/deckhand/internal/core/testutil"
)

func TestNewRootCommand_BareInvocationRunsConsole(t *testing.T) {
	disableColors(t)

	root := NewRootCommand("test", newConsoleService(t), &testutil.MockCommandCatalogService{})
	var out bytes.Buffer
	root.SetIn(strings.NewReader("q\n"))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}

	got := out.String()
	for _, want := range []string{testBanner, testPrompt, "quit\n\nGoodbye!\n\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Execute() output missing %q:\n%q", want, got)
		}
	}
}

func TestNewRootCommand_RunSubcommand(t *testing.T) {
	disableColors(t)

	root := NewRootCommand("test", newConsoleService(t), &testutil.MockCommandCatalogService{})
	var out bytes.Buffer
	root.SetIn(strings.NewReader("quit\n"))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"run"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if got := out.String(); !strings.Contains(got, "quit\n\nGoodbye!\n\n") {
		t.Errorf("Execute() output missing quit confirmation:\n%q", got)
	}
}

func TestNewRootCommand_NoColorFlag(t *testing.T) {
	previous := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = previous })

	root := NewRootCommand("test", newConsoleService(t), &testutil.MockCommandCatalogService{})
	root.SetIn(strings.NewReader("q\n"))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--no-color"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if !color.NoColor {
		t.Error("Execute() with --no-color did not disable colors")
	}
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand("1.2.3-test", newConsoleService(t), &testutil.MockCommandCatalogService{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error = %v", err)
	}
	if got := out.String(); !strings.Contains(got, "1.2.3-test") {
		t.Errorf("Execute() version output = %q, missing version string", got)
	}
}

func TestNewRootCommand_UninitializedServices(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bare console without validation service", args: []string{}},
		{name: "run without validation service", args: []string{"run"}},
		{name: "validate without validation service", args: []string{"validate", "play"}},
		{name: "commands without catalog service", args: []string{"commands"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCommand("test", nil, nil)
			root.SetIn(strings.NewReader(""))
			root.SetOut(io.Discard)
			root.SetErr(io.Discard)
			root.SetArgs(tt.args)

			err := root.Execute()
			if err == nil {
				t.Fatal("Execute() error = nil, want an initialization error")
			}
			if !strings.Contains(err.Error(), "not initialized") {
				t.Errorf("Execute() error = %v, want an initialization error", err)
			}
		})
	}
}

func TestNewRootCommand_UnknownCommand(t *testing.T) {
	root := NewRootCommand("test", newConsoleService(t), &testutil.MockCommandCatalogService{})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"bogus"})

	if err := root.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want an unknown command error")
	}
}
