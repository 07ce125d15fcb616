package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/tootline/internal/service"
	"github.com/MKhiriev/tootline/internal/validators"
	"github.com/MKhiriev/tootline/models"
)

type composeMode int

const (
	composeNew composeMode = iota
	composeReply
	composeEdit
)

type composeRequest struct {
	mode   composeMode
	parent models.Status
	editID string
	draft  models.StatusRequest
}

var visibilities = []models.Visibility{
	models.VisibilityPublic,
	models.VisibilityUnlisted,
	models.VisibilityPrivate,
	models.VisibilityDirect,
}

type composeOverlay struct {
	ctx      context.Context
	statuses service.StatusService
	suggest  service.SuggestionService

	req        composeRequest
	area       textarea.Model
	visibility models.Visibility
	media      []models.MediaAttachment

	token       string
	suggestions []string
	selected    int

	sending bool
	errMsg  string
}

func newComposeOverlay(m *appModel, payload any) (overlay, tea.Cmd) {
	req, _ := payload.(composeRequest)

	area := textarea.New()
	area.Placeholder = "What's on your mind?"
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.SetWidth(60)
	area.SetHeight(6)
	area.SetValue(req.draft.Status)
	area.Focus()

	visibility := req.draft.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	return composeOverlay{
		ctx:        m.ctx,
		statuses:   m.services.StatusService,
		suggest:    m.services.SuggestionService,
		req:        req,
		area:       area,
		visibility: visibility,
	}, nil
}

func (o composeOverlay) Update(msg tea.Msg) (overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case statusPostedMsg:
		if !o.sending {
			return o, nil
		}
		o.sending = false
		if msg.err != nil {
			o.errMsg = humanizeError(msg.err)
			return o, nil
		}
		return o, closeOverlay
	case suggestionsMsg:
		if msg.token != o.token || msg.err != nil {
			return o, nil
		}
		o.suggestions = msg.items
		o.selected = 0
		return o, nil
	case mediaUploadedMsg:
		if msg.err == nil {
			o.media = append(o.media, msg.attachments...)
		}
		return o, nil
	case tea.KeyMsg:
		return o.updateKey(msg)
	}

	var cmd tea.Cmd
	o.area, cmd = o.area.Update(msg)
	return o, cmd
}

func (o composeOverlay) updateKey(msg tea.KeyMsg) (overlay, tea.Cmd) {
	if o.sending {
		return o, nil
	}

	switch {
	case msg.Type == tea.KeyEsc:
		if len(o.suggestions) > 0 {
			o.suggestions = nil
			return o, nil
		}
		return o, closeOverlay
	case key.Matches(msg, keys.submit):
		return o.submit()
	case key.Matches(msg, keys.visibility):
		o.visibility = nextVisibility(o.visibility)
		return o, nil
	case key.Matches(msg, keys.attach):
		if len(o.media)+len(o.req.draft.MediaIDs) >= validators.MaxMedia {
			o.errMsg = fmt.Sprintf("at most %d attachments", validators.MaxMedia)
			return o, nil
		}
		return o, openOverlay(overlayMedia, nil)
	case len(o.suggestions) > 0 && key.Matches(msg, keys.accept):
		o.area.SetValue(replaceToken(o.area.Value(), o.token, o.suggestions[o.selected]))
		o.area.CursorEnd()
		o.suggestions = nil
		o.token = ""
		return o, nil
	case len(o.suggestions) > 0 && key.Matches(msg, keys.nextSugg):
		o.selected = (o.selected + 1) % len(o.suggestions)
		return o, nil
	case len(o.suggestions) > 0 && key.Matches(msg, keys.prevSugg):
		o.selected = (o.selected + len(o.suggestions) - 1) % len(o.suggestions)
		return o, nil
	}

	var cmd tea.Cmd
	o.area, cmd = o.area.Update(msg)

	token := currentToken(o.area.Value())
	if token == o.token {
		return o, cmd
	}
	o.token = token
	o.suggestions = nil
	if utf8.RuneCountInString(token) < 2 {
		return o, cmd
	}
	return o, tea.Batch(cmd, o.fetchSuggestions(token))
}

func (o composeOverlay) fetchSuggestions(token string) tea.Cmd {
	ctx, suggest := o.ctx, o.suggest
	return func() tea.Msg {
		items, err := suggest.Suggest(ctx, token)
		return suggestionsMsg{token: token, items: items, err: err}
	}
}

func (o composeOverlay) request() models.StatusRequest {
	req := o.req.draft
	req.Status = o.area.Value()
	req.Visibility = o.visibility
	req.MediaIDs = append([]string(nil), req.MediaIDs...)
	for _, m := range o.media {
		req.MediaIDs = append(req.MediaIDs, m.ID)
	}
	if len(req.MediaIDs) == 0 {
		req.MediaIDs = nil
	}
	return req
}

func (o composeOverlay) submit() (overlay, tea.Cmd) {
	req := o.request()
	o.sending = true
	o.errMsg = ""

	ctx, statuses, mode := o.ctx, o.statuses, o.req
	return o, func() tea.Msg {
		var (
			status models.Status
			err    error
		)
		switch mode.mode {
		case composeReply:
			status, err = statuses.Reply(ctx, mode.parent, req)
		case composeEdit:
			status, err = statuses.Edit(ctx, mode.editID, req)
		default:
			status, err = statuses.Post(ctx, req)
		}
		return statusPostedMsg{status: status, edited: mode.mode == composeEdit, err: err}
	}
}

func (o composeOverlay) View() string {
	var b strings.Builder

	title := "New post"
	switch o.req.mode {
	case composeReply:
		title = "Reply to @" + o.req.parent.Target().Account.Acct
	case composeEdit:
		title = "Edit post"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(o.area.View())
	b.WriteString("\n")

	if len(o.suggestions) > 0 {
		for i, s := range o.suggestions {
			if i == o.selected {
				b.WriteString(activeStyle.Render("> " + s))
			} else {
				b.WriteString("  " + s)
			}
			b.WriteString("\n")
		}
	}

	for _, m := range o.media {
		b.WriteString(acctStyle.Render("[" + string(m.Type) + "] " + m.Description))
		b.WriteString("\n")
	}

	count := validators.CountChars(o.request())
	counter := fmt.Sprintf("%d/%d", count, validators.MaxStatusChars)
	if count > validators.MaxStatusChars {
		counter = errorStyle.Render(counter)
	}
	b.WriteString(fmt.Sprintf("\n%s  visibility: %s\n", counter, o.visibility))

	if o.sending {
		b.WriteString("sending…\n")
	}
	if o.errMsg != "" {
		b.WriteString(errorStyle.Render(o.errMsg) + "\n")
	}
	b.WriteString(helpStyle.Render("ctrl+s send  ctrl+v visibility  ctrl+o attach  tab complete  esc cancel"))

	return overlayBoxStyle.Render(b.String())
}

func nextVisibility(v models.Visibility) models.Visibility {
	for i, candidate := range visibilities {
		if candidate == v {
			return visibilities[(i+1)%len(visibilities)]
		}
	}
	return visibilities[0]
}

// currentToken returns the word being typed at the end of text.
func currentToken(text string) string {
	if text == "" {
		return ""
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	if unicode.IsSpace(last) {
		return ""
	}
	fields := strings.Fields(text)
	return fields[len(fields)-1]
}

func replaceToken(text, token, replacement string) string {
	if token == "" || !strings.HasSuffix(text, token) {
		return text + replacement + " "
	}
	return strings.TrimSuffix(text, token) + replacement + " "
}
