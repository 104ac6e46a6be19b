package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pmcarmo/deckhand/internal/core/domain/playback"
	"github.com/pmcarmo/deckhand/internal/core/ports"
	"github.com/pmcarmo/deckhand/internal/handlers/ui"
)

// consoleBanner greets the user once when the console starts.
const consoleBanner = "Welcome to the Command Validator!"

// consoleFarewell is printed after the quit confirmation.
const consoleFarewell = "Goodbye!"

/*
runConsole drives the interactive read-validate-dispatch loop: print
the prompt, read one line, evaluate it, report the outcome, repeat.

The loop ends when the quit command is entered or when in reaches EOF;
both are normal terminations. Every evaluation failure is reported and
the loop resumes.
*/
func runConsole(in io.Reader, out io.Writer, svc ports.CommandValidationService) error {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, ui.HeaderColor(consoleBanner))
	fmt.Fprintln(out)

	for {
		fmt.Fprint(out, ui.PromptColor(svc.PromptText()))

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("could not read input: %w", readErr)
		}

		raw := strings.TrimRight(line, "\r\n")
		if readErr != nil && raw == "" {
			// EOF with nothing left to evaluate. End the dangling
			// prompt line and leave the console cleanly.
			fmt.Fprintln(out)
			return nil
		}

		if quit := evaluateAndReport(out, svc, raw); quit {
			return nil
		}
		if readErr != nil {
			// The final unterminated line has been evaluated; nothing
			// more can arrive after EOF.
			return nil
		}
	}
}

/*
evaluateAndReport runs one console iteration: evaluate raw and print
the outcome. It reports whether the quit command ended the console.

A panic escaping the evaluation is caught here, at the loop boundary,
and reported generically so the loop can resume; no input may crash
the console.
*/
func evaluateAndReport(out io.Writer, svc ports.CommandValidationService, raw string) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("Unexpected internal error: %v", r)))
			fmt.Fprintln(out)
			quit = false
		}
	}()

	match, err := svc.Evaluate(raw)
	if err != nil {
		reportEvaluationError(out, err)
		return false
	}

	// Confirmations are printed uncolored so they stay byte-exact.
	fmt.Fprintf(out, "%s\n\n", match.Definition.Output)

	if match.IsQuit() {
		fmt.Fprintf(out, "%s\n\n", ui.InfoColor(consoleFarewell))
		return true
	}
	return false
}

// reportEvaluationError prints one evaluation failure with the
// offending input echoed. Every failure kind is non-fatal.
func reportEvaluationError(out io.Writer, err error) {
	var invalidChar *playback.InvalidCharacterError
	var unrecognized *playback.UnrecognizedCommandError

	switch {
	case errors.As(err, &invalidChar):
		fmt.Fprintln(out, ui.ErrorColor("Bad string: "+invalidChar.Input))
	case errors.As(err, &unrecognized):
		fmt.Fprintln(out, ui.ErrorColor("Unrecognized command: "+unrecognized.Input))
	default:
		fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("Unexpected error: %v", err)))
	}
	fmt.Fprintln(out)
}
