package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/tootline/internal/service"
	"github.com/MKhiriev/tootline/models"
)

var errNoFile = errors.New("enter the path of a file to attach")

type mediaOverlay struct {
	ctx   context.Context
	media service.MediaService

	inputs    []textinput.Model
	focus     int
	uploading bool
	errMsg    string
}

func newMediaOverlay(m *appModel, _ any) (overlay, tea.Cmd) {
	path := textinput.New()
	path.Placeholder = "~/pictures/cat.png"
	path.Prompt = "file: "
	path.Focus()

	desc := textinput.New()
	desc.Placeholder = "describe the image for people who cannot see it"
	desc.Prompt = "alt:  "

	return mediaOverlay{
		ctx:    m.ctx,
		media:  m.services.MediaService,
		inputs: []textinput.Model{path, desc},
	}, nil
}

func (o mediaOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case mediaUploadedMsg:
		o.uploading = false
		if msg.err != nil {
			o.errMsg = humanizeError(msg.err)
			return o, nil
		}
		return o, closeOverlay
	case tea.KeyMsg:
		if o.uploading {
			return o, nil
		}
		switch {
		case msg.Type == tea.KeyEsc:
			return o, closeOverlay
		case key.Matches(msg, keys.focusNext):
			o.inputs[o.focus].Blur()
			o.focus = (o.focus + 1) % len(o.inputs)
			o.inputs[o.focus].Focus()
			return o, nil
		case msg.Type == tea.KeyEnter:
			path := expandHome(strings.TrimSpace(o.inputs[0].Value()))
			if path == "" {
				o.errMsg = errNoFile.Error()
				return o, nil
			}
			o.uploading = true
			o.errMsg = ""
			return o, uploadFile(o.ctx, o.media, path, strings.TrimSpace(o.inputs[1].Value()))
		}
	}

	var cmd tea.Cmd
	o.inputs[o.focus], cmd = o.inputs[o.focus].Update(msg)
	return o, cmd
}

func (o mediaOverlay) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Attach media"))
	b.WriteString("\n\n")
	for _, in := range o.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if o.uploading {
		b.WriteString("\nuploading…\n")
	}
	if o.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(o.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab next field  enter upload  esc cancel"))
	return overlayBoxStyle.Render(b.String())
}

func uploadFile(ctx context.Context, media service.MediaService, path, description string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return mediaUploadedMsg{err: fmt.Errorf("open %s: %w", path, err)}
		}
		defer f.Close()

		attachments, err := media.Upload(ctx, models.MediaUpload{
			FileName:    filepath.Base(path),
			Reader:      f,
			Description: description,
		})
		return mediaUploadedMsg{attachments: attachments, err: err}
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
