package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

func feed(events ...keyboard.KeyEvent) <-chan keyboard.KeyEvent {
	keys := make(chan keyboard.KeyEvent, len(events))
	for _, e := range events {
		keys <- e
	}
	close(keys)
	return keys
}

func TestSelect(t *testing.T) {
	var out bytes.Buffer
	keys := feed(
		keyboard.KeyEvent{Rune: 'x'},
		keyboard.KeyEvent{Rune: '7'},
		keyboard.KeyEvent{Rune: '1'},
	)
	index, err := Select(&out, []string{"Neon Tide", "Quiet"}, keys)
	if nil != err || index != 1 {
		t.Errorf("expected the second choice, got %v %v", index, err)
	}
	if !strings.Contains(out.String(), " 1) Quiet") {
		t.Errorf("unexpected listing %q", out.String())
	}
}

func TestSelectCancel(t *testing.T) {
	var out bytes.Buffer
	_, err := Select(&out, []string{"a"}, feed(keyboard.KeyEvent{Key: keyboard.KeyEsc}))
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("expected a cancel, got %v", err)
	}
	_, err = Select(&out, []string{"a"}, feed())
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("expected a cancel when keys run out, got %v", err)
	}
}

func TestSelectLimitsChoices(t *testing.T) {
	var out bytes.Buffer
	choices := make([]string, 15)
	for i := range choices {
		choices[i] = "song"
	}
	if _, err := Select(&out, choices, feed()); !errors.Is(err, ErrCancelled) {
		t.Fatal(err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != MaxChoices {
		t.Errorf("expected %v listed choices, got %v", MaxChoices, lines)
	}
}
