package ports

/*
InputValidator defines the contract for checking the character set of a
raw input line before any further processing. This is a driven port,
representing a domain capability.

Validate returns nil when every character of raw is acceptable, and a
*playback.InvalidCharacterError describing the first offender
otherwise. It is a pure classification and has no side effects.
*/
type InputValidator interface {
	Validate(raw string) error
}
