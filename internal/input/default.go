package input

import (
	"unicode"

	"git.lost.host/meutraa/notecanvas/internal/logger"
	"git.lost.host/meutraa/notecanvas/internal/note"
	"github.com/eiannone/keyboard"
	"go.uber.org/zap"
)

type Event struct {
	Rune rune
	Key  keyboard.Key
}

type Kind uint8

const (
	None Kind = iota
	PlayNote
	ToggleSharp
	Clear
	Save
	Quit
)

type Action struct {
	Kind Kind
	Note note.Note // Only set for PlayNote
}

// Map turns a key press into what the program should do. Note letters
// pick up the current sharp state.
func Map(ev Event, sharp bool) Action {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Action{Kind: Quit}
	case keyboard.KeySpace:
		return Action{Kind: Clear}
	}
	switch unicode.ToLower(ev.Rune) {
	case '#':
		return Action{Kind: ToggleSharp}
	case ' ':
		return Action{Kind: Clear}
	case 's':
		return Action{Kind: Save}
	case 'q':
		return Action{Kind: Quit}
	case 0:
		return Action{Kind: None}
	}
	n, err := note.Parse(string(ev.Rune))
	if nil != err {
		return Action{Kind: None}
	}
	n.Sharp = sharp
	return Action{Kind: PlayNote, Note: n}
}

// ReadInput puts the terminal in raw mode and forwards key presses to
// events until the returned close function is called.
func ReadInput(events chan<- Event, log *zap.Logger) (func() error, error) {
	log = logger.OrNop(log)
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return nil, err
	}
	go func() {
		defer close(events)
		for key := range keys {
			if nil != key.Err {
				log.Warn("unable to read keyboard input", zap.Error(key.Err))
				return
			}
			events <- Event{Rune: key.Rune, Key: key.Key}
		}
	}()
	return keyboard.Close, nil
}
