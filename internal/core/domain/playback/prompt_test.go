package playback

import "testing"

func TestTable_PromptText(t *testing.T) {
	table, err := NewTable(testDefinitions())
	if err != nil {
		t.Fatalf("NewTable() unexpected error = %v", err)
	}

	want := "P)lay, pA)use, R)ewind, F)ast-forward, S)top, or Q)uit?: "
	if got := table.PromptText(); got != want {
		t.Errorf("Table.PromptText() diff:\ngot : %q\nwant: %q", got, want)
	}
}

func TestTable_PromptTextSingleCommand(t *testing.T) {
	table, err := NewTable([]Definition{
		{Action: ActionPlay, Word: "play", Abbreviation: "p", Output: "play"},
	})
	if err != nil {
		t.Fatalf("NewTable() unexpected error = %v", err)
	}

	// A single command takes no "or " prefix.
	want := "P)lay?: "
	if got := table.PromptText(); got != want {
		t.Errorf("Table.PromptText() = %q, want %q", got, want)
	}
}

func TestPromptFragment(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want string
	}{
		{
			name: "abbreviation is the leading letter",
			def:  Definition{Word: "play", Abbreviation: "p"},
			want: "P)lay",
		},
		{
			name: "abbreviation sits inside the word",
			def:  Definition{Word: "pause", Abbreviation: "a"},
			want: "pA)use",
		},
		{
			name: "abbreviation leads a dashed word",
			def:  Definition{Word: "fast-forward", Abbreviation: "f"},
			want: "F)ast-forward",
		},
		{
			name: "abbreviation absent from the word",
			def:  Definition{Word: "loop", Abbreviation: "x"},
			want: "X)loop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := promptFragment(tt.def); got != tt.want {
				t.Errorf("promptFragment(%+v) = %q, want %q", tt.def, got, tt.want)
			}
		})
	}
}
