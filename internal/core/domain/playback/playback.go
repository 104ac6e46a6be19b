/*
Package playback defines the core domain entities for the command
validator: the fixed playback command table and the results of
dispatching user input against it.
*/
package playback

// Action is the canonical identity of a playback command, e.g. "play".
type Action string

// The six playback actions, in dispatch precedence order.
const (
	ActionPlay        Action = "play"
	ActionPause       Action = "pause"
	ActionRewind      Action = "rewind"
	ActionFastForward Action = "fast-forward"
	ActionStop        Action = "stop"
	ActionQuit        Action = "quit"
)

/*
Definition describes one entry of the command table: the action it
stands for, the full command word, the one-letter abbreviation accepted
as a synonym, and the confirmation text printed when the command is
recognized. This is a core domain entity.
*/
type Definition struct {
	Action       Action `yaml:"action"`
	Word         string `yaml:"word"`
	Abbreviation string `yaml:"abbreviation"`
	Output       string `yaml:"output"`
}

// MatchedBy reports which token of a Definition the input matched.
type MatchedBy string

const (
	MatchedByWord         MatchedBy = "word"
	MatchedByAbbreviation MatchedBy = "abbreviation"
)

// Match holds the result of dispatching a normalized input line
// against the command table.
type Match struct {
	Definition Definition
	MatchedBy  MatchedBy
}

// IsQuit reports whether the matched command terminates the console.
func (m Match) IsQuit() bool {
	return m.Definition.Action == ActionQuit
}
