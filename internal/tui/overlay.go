package tui

import tea "github.com/charmbracelet/bubbletea"

const (
	overlayCompose = "compose"
	overlayConfirm = "confirm"
	overlayMedia   = "media"
)

// overlay is a modal drawn over the timeline. Key presses go to the topmost
// overlay only; every other message is offered to all open overlays.
type overlay interface {
	Update(msg tea.Msg) (overlay, tea.Cmd)
	View() string
}

// overlayFactory builds an overlay from the payload of openOverlayMsg.
type overlayFactory func(m *appModel, payload any) (overlay, tea.Cmd)

func defaultOverlays() map[string]overlayFactory {
	return map[string]overlayFactory{
		overlayCompose: newComposeOverlay,
		overlayConfirm: newConfirmOverlay,
		overlayMedia:   newMediaOverlay,
	}
}

func openOverlay(name string, payload any) tea.Cmd {
	return func() tea.Msg { return openOverlayMsg{name: name, payload: payload} }
}

func closeOverlay() tea.Msg {
	return closeOverlayMsg{}
}
