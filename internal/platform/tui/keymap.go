package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/redkatdev/hovercat/internal/game"
)

// titleRows is the number of top screen rows treated as the title area.
// A click there toggles pause on platforms without window management.
const titleRows = 2

// KeyMapper translates Bubble Tea messages into game signals.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	mapper *game.Mapper
}

// NewKeyMapper creates a key mapper for the given platform capabilities.
func NewKeyMapper(caps game.Capabilities) *KeyMapper {
	return &KeyMapper{mapper: game.NewMapper(caps)}
}

// MapKey translates a key message into signals on the frame.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, frame *game.SignalFrame) {
	km.mapper.MapKey(msg.String(), frame)
}

// MapMouse translates a left-button press into a tap signal. Clicks in
// the title area map to pause, everything else to flap/confirm.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, frame *game.SignalFrame) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	km.mapper.MapTap(msg.Y < titleRows, frame)
}

// MapFocus translates terminal focus changes into focus signals.
func (km *KeyMapper) MapFocus(focused bool, frame *game.SignalFrame) {
	km.mapper.MapFocus(focused, frame)
}
