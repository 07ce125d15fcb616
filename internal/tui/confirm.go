package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmRequest struct {
	message string
	onYes   tea.Cmd
}

type confirmOverlay struct {
	req confirmRequest
}

func newConfirmOverlay(_ *appModel, payload any) (overlay, tea.Cmd) {
	req, _ := payload.(confirmRequest)
	return confirmOverlay{req: req}, nil
}

func (o confirmOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		if o.req.onYes == nil {
			return o, closeOverlay
		}
		return o, tea.Batch(closeOverlay, o.req.onYes)
	case key.Matches(keyMsg, keys.no):
		return o, closeOverlay
	}
	return o, nil
}

func (o confirmOverlay) View() string {
	return overlayBoxStyle.Render(o.req.message + "\n\n" + helpStyle.Render("y yes    n no"))
}
