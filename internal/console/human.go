package console

import (
	"fmt"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
	"github.com/RenzoDavila27/Truco-AI/internal/i18n"
	"github.com/RenzoDavila27/Truco-AI/internal/player"
	"github.com/pterm/pterm"
)

// SelectFunc asks the user to pick one of options and returns the choice.
type SelectFunc func(prompt string, options []string) (string, error)

// InteractiveSelect prompts with pterm's arrow key menu.
func InteractiveSelect(prompt string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(prompt).
		WithOptions(options).
		WithMaxHeight(len(options)).
		Show()
}

// Human is a player.Player driven from the terminal.
type Human struct {
	PlayerName string
	Renderer   *Renderer
	Select     SelectFunc
	// Peek, when set, supplies the view drawn on the board, e.g. one with
	// the opponent's hand revealed.
	Peek func(seat engine.Player) engine.View
}

var _ player.Player = (*Human)(nil)

func (h *Human) Name() string { return h.PlayerName }

// ChooseAction draws the board and asks for one of the legal actions.
func (h *Human) ChooseAction(v engine.View, mask engine.Mask) (engine.Action, error) {
	legal := mask.Legal()
	if len(legal) == 0 {
		return 0, player.ErrNoLegalAction
	}
	board := v
	if h.Peek != nil {
		board = h.Peek(v.Seat)
	}
	if err := h.Renderer.Board(board); err != nil {
		return 0, err
	}
	p := h.Renderer.Printer()
	options := make([]string, len(legal))
	byLabel := make(map[string]engine.Action, len(legal))
	for i, a := range legal {
		label := i18n.Action(p, a)
		if a.IsPlayCard() {
			label = fmt.Sprintf("%s (%s)", label, i18n.Card(p, v.Hand[a-engine.ActionPlayCard1]))
		}
		options[i] = label
		byLabel[label] = a
	}

	sel := h.Select
	if sel == nil {
		sel = InteractiveSelect
	}
	choice, err := sel(p.Sprintf("prompt.action"), options)
	if err != nil {
		return 0, err
	}
	a, ok := byLabel[choice]
	if !ok {
		return 0, fmt.Errorf("unknown choice %q", choice)
	}
	return a, nil
}
