package input

import (
	"fmt"
	"io"
	"strconv"

	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

// MaxChoices is the number of choices selectable with a single digit.
const MaxChoices = 10

var ErrCancelled = errors.New("selection cancelled")

// Pick lists the choices on out and waits for a digit key.
func Pick(out io.Writer, choices []string) (int, error) {
	keys, err := keyboard.GetKeys(10)
	if nil != err {
		return -1, errors.Wrap(err, "unable to open keyboard")
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			fmt.Fprintln(out, "unable to close keyboard", err)
		}
	}()
	return Select(out, choices, keys)
}

// Select lists the choices and reads keys until a listed digit is pressed.
// Escape cancels.
func Select(out io.Writer, choices []string, keys <-chan keyboard.KeyEvent) (int, error) {
	if len(choices) > MaxChoices {
		choices = choices[:MaxChoices]
	}
	for i, c := range choices {
		fmt.Fprintf(out, "%2v) %v\n", i, c)
	}
	for key := range keys {
		if nil != key.Err {
			return -1, key.Err
		}
		if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
			return -1, ErrCancelled
		}
		index, err := strconv.Atoi(string(key.Rune))
		if nil != err || index >= len(choices) {
			continue
		}
		return index, nil
	}
	return -1, ErrCancelled
}
