package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/tootline/internal/service"
	"github.com/MKhiriev/tootline/internal/timeline"
	"github.com/MKhiriev/tootline/internal/utils"
	"github.com/MKhiriev/tootline/models"
)

// feedView is one open feed with its cursor. Thread views carry their root.
type feedView struct {
	feed   *service.Feed
	root   *models.Status
	snap   timeline.Snapshot[models.Status]
	cursor int

	// pending is set while an automatic load-more is in flight; failed
	// holds further automatic loads until the cursor moves or a refresh.
	pending bool
	failed  bool
}

func (v *feedView) current() (models.Status, bool) {
	if v == nil || v.cursor < 0 || v.cursor >= len(v.snap.Items) {
		return models.Status{}, false
	}
	return v.snap.Items[v.cursor], true
}

func (v *feedView) sync() {
	v.snap = v.feed.Snapshot()
	if v.cursor >= len(v.snap.Items) {
		v.cursor = len(v.snap.Items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

type appModel struct {
	ctx       context.Context
	services  *service.Services
	lookahead int
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	tabs    []models.TimelineRef
	tab     int
	views   []*feedView
	changes chan struct{}

	registry map[string]overlayFactory
	overlays []overlay

	me       models.Account
	status   string
	errMsg   string
	showInfo bool
	width    int
	height   int
}

func newAppModel(ctx context.Context, services *service.Services, opts Options) appModel {
	tabs := opts.Tabs
	if len(tabs) == 0 {
		tabs = DefaultTabs()
	}
	start := 0
	for i, ref := range tabs {
		if ref.Kind == opts.Start {
			start = i
		}
	}

	return appModel{
		ctx:       ctx,
		services:  services,
		lookahead: opts.Lookahead,
		buildInfo: opts.BuildInfo,
		copyText:  clipboard.WriteAll,
		tabs:      tabs,
		tab:       start,
		changes:   make(chan struct{}, 1),
		registry:  defaultOverlays(),
	}
}

// onChange is handed to every feed. It never blocks: pending signals are
// coalesced and the model re-reads the feeds when the signal is delivered.
func (m appModel) onChange(timeline.Snapshot[models.Status]) {
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadMe(), m.cmdOpenFeed(m.tabs[m.tab]))
}

func (m appModel) top() *feedView {
	if len(m.views) == 0 {
		return nil
	}
	return m.views[len(m.views)-1]
}

func (m appModel) viewOf(feed *service.Feed) *feedView {
	for _, v := range m.views {
		if v.feed == feed {
			return v
		}
	}
	return nil
}

func (m appModel) syncViews() {
	for _, v := range m.views {
		v.sync()
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case openOverlayMsg:
		factory, ok := m.registry[msg.name]
		if !ok {
			return m, nil
		}
		o, cmd := factory(&m, msg.payload)
		m.overlays = append(m.overlays, o)
		return m, cmd
	case closeOverlayMsg:
		if n := len(m.overlays); n > 0 {
			m.overlays = m.overlays[:n-1]
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m.quit()
		}
		if n := len(m.overlays); n > 0 {
			var cmd tea.Cmd
			m.overlays[n-1], cmd = m.overlays[n-1].Update(msg)
			return m, cmd
		}
		return m.updateKey(keyMsg)
	}

	var cmds []tea.Cmd
	for i := range m.overlays {
		var cmd tea.Cmd
		m.overlays[i], cmd = m.overlays[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	next, cmd := m.updateResult(msg)
	return next, tea.Batch(append(cmds, cmd)...)
}

func (m appModel) updateResult(msg tea.Msg) (appModel, tea.Cmd) {
	switch msg := msg.(type) {
	case feedOpenedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if !msg.push {
			m.closeViews()
			m.views = nil
		}
		view := &feedView{feed: msg.feed, root: msg.root}
		view.sync()
		m.views = append(m.views, view)
		m.errMsg = ""
		return m, m.cmdStartFeed(msg.feed)

	case feedChangedMsg:
		m.syncViews()
		return m, m.maybeLoadMore()

	case feedErrMsg:
		m.syncViews()
		if v := m.viewOf(msg.feed); v != nil && msg.loadMore {
			v.pending = false
			v.failed = msg.err != nil
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil

	case meLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.me = msg.me
		return m, nil

	case statusChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.replaceStatus(msg.status)
		m.errMsg = ""
		return m, nil

	case statusDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		for _, v := range m.views {
			v.feed.Remove(msg.id)
		}
		m.syncViews()
		m.status = "Post deleted"
		return m, nil

	case statusPostedMsg:
		if msg.err != nil {
			return m, nil
		}
		if msg.edited {
			m.replaceStatus(msg.status)
			m.status = "Post edited"
			return m, nil
		}
		if len(m.views) > 0 && m.views[0].feed.Ref().Kind == models.TimelineHome {
			m.views[0].feed.Prepend(msg.status)
		}
		if v := m.top(); v != nil && v.root != nil && msg.status.InReplyToID != "" {
			v.feed.Prepend(msg.status)
		}
		m.syncViews()
		m.status = "Posted"
		return m, nil

	case pollVotedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		for _, v := range m.views {
			if s, ok := v.feed.Get(msg.statusID); ok {
				v.feed.Update(s.ID, withPoll(s, msg.poll))
			}
		}
		m.syncViews()
		m.status = "Vote sent"
		return m, nil

	case relationshipMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		switch {
		case msg.rel.Following:
			m.status = "Following @" + msg.acct
		case msg.rel.Requested:
			m.status = "Follow requested from @" + msg.acct
		default:
			m.status = "Unfollowed @" + msg.acct
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied " + msg.url
		return m, nil
	}

	return m, nil
}

// replaceStatus applies an updated status to every view holding it. Boost
// wrappers of the same target are refreshed too.
func (m appModel) replaceStatus(updated models.Status) {
	target := *updated.Target()
	for _, v := range m.views {
		if v.root != nil && v.root.ID == target.ID {
			root := target
			v.root = &root
		}
		for _, s := range v.feed.Items() {
			switch {
			case s.ID == updated.ID:
				v.feed.Update(s.ID, updated)
			case s.Reblog != nil && s.Reblog.ID == target.ID:
				s.Reblog = &target
				v.feed.Update(s.ID, s)
			case s.Reblog == nil && s.ID == target.ID:
				v.feed.Update(s.ID, target)
			}
		}
	}
	m.syncViews()
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showInfo {
		if key.Matches(msg, keys.info) || msg.Type == tea.KeyEsc {
			m.showInfo = false
		}
		return m, nil
	}

	v := m.top()
	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.nextTab):
		if len(m.views) > 1 {
			return m, nil
		}
		m.tab = (m.tab + 1) % len(m.tabs)
		m.status = ""
		return m, m.cmdOpenFeed(m.tabs[m.tab])
	case key.Matches(msg, keys.compose):
		return m, openOverlay(overlayCompose, composeRequest{
			mode:  composeNew,
			draft: models.StatusRequest{Visibility: models.VisibilityPublic},
		})
	}

	if v == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if v.cursor > 0 {
			v.cursor--
			v.failed = false
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if v.cursor < len(v.snap.Items)-1 {
			v.cursor++
			v.failed = false
		}
		return m, m.maybeLoadMore()
	case key.Matches(msg, keys.top):
		v.cursor = 0
		v.failed = false
		return m, nil
	case key.Matches(msg, keys.refresh):
		v.cursor = 0
		v.failed = false
		m.status = ""
		return m, m.cmdRefresh(v.feed)
	case key.Matches(msg, keys.back):
		if len(m.views) < 2 {
			return m, nil
		}
		v.feed.Close()
		m.views = m.views[:len(m.views)-1]
		return m, nil
	}

	s, ok := v.current()
	if !ok {
		return m, nil
	}
	target := s.Target()

	switch {
	case key.Matches(msg, keys.favourite):
		return m, m.cmdToggle(s, m.services.StatusService.ToggleFavourite)
	case key.Matches(msg, keys.boost):
		return m, m.cmdToggle(s, m.services.StatusService.ToggleReblog)
	case key.Matches(msg, keys.bookmark):
		return m, m.cmdToggle(s, m.services.StatusService.ToggleBookmark)
	case key.Matches(msg, keys.open):
		return m, m.cmdOpenThread(target.ID)
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(statusURL(*target))
	case key.Matches(msg, keys.reply):
		return m, openOverlay(overlayCompose, composeRequest{
			mode:   composeReply,
			parent: s,
			draft:  m.services.StatusService.ReplyDraft(s),
		})
	case key.Matches(msg, keys.follow):
		return m, m.cmdToggleFollow(target.Account)
	case key.Matches(msg, keys.vote):
		if target.Poll == nil {
			return m, nil
		}
		choice, _ := strconv.Atoi(msg.String())
		return m, m.cmdVote(s.ID, *target.Poll, choice-1)
	case key.Matches(msg, keys.delete):
		if !m.owns(*target) || s.Reblog != nil {
			m.status = "You can only delete your own posts"
			return m, nil
		}
		return m, openOverlay(overlayConfirm, confirmRequest{
			message: "Delete this post?\n\n" + fitText(firstLine(*target), 50),
			onYes:   m.cmdDelete(target.ID),
		})
	case key.Matches(msg, keys.edit):
		if !m.owns(*target) {
			m.status = "You can only edit your own posts"
			return m, nil
		}
		return m, openOverlay(overlayCompose, composeRequest{
			mode:   composeEdit,
			editID: target.ID,
			draft:  m.services.StatusService.EditDraft(*target),
		})
	}

	return m, nil
}

func (m appModel) owns(s models.Status) bool {
	return m.me.ID != "" && s.Account.ID == m.me.ID
}

func (m appModel) maybeLoadMore() tea.Cmd {
	v := m.top()
	if v == nil || len(v.snap.Items) == 0 || v.pending || v.failed {
		return nil
	}
	if !v.feed.ShouldLoadMore(v.cursor, m.lookahead) {
		return nil
	}
	v.pending = true
	return m.cmdLoadMore(v.feed)
}

func (m appModel) closeViews() {
	for _, v := range m.views {
		v.feed.Close()
	}
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.closeViews()
	m.views = nil
	return m, tea.Quit
}

func (m appModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo, m.me.Acct)
	}
	if n := len(m.overlays); n > 0 {
		box := m.overlays[n-1].View()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	return renderPage(m.header(), m.body(), m.footer())
}

func (m appModel) header() string {
	if v := m.top(); v != nil && v.root != nil {
		return "thread · esc back"
	}
	labels := make([]string, 0, len(m.tabs))
	for i, ref := range m.tabs {
		if i == m.tab {
			labels = append(labels, activeTabStyle.Render(tabLabel(ref)))
		} else {
			labels = append(labels, tabStyle.Render(tabLabel(ref)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

func (m appModel) body() string {
	v := m.top()
	if v == nil {
		return "Loading…"
	}

	var b strings.Builder
	if v.root != nil {
		b.WriteString(renderStatus(*v.root, false, m.width))
		b.WriteString("\n" + uiDivider + "\n")
	}

	items := v.snap.Items
	if len(items) == 0 {
		switch {
		case v.snap.Loading:
			b.WriteString("Loading…\n")
		case v.root != nil:
			b.WriteString("No replies\n")
		default:
			b.WriteString("Nothing here yet\n")
		}
		return b.String()
	}

	from, to := visibleWindow(len(items), v.cursor, m.height)
	for i := from; i < to; i++ {
		b.WriteString(renderStatus(items[i], i == v.cursor, m.width))
		b.WriteString("\n")
	}

	switch {
	case v.snap.Loading:
		b.WriteString(helpStyle.Render("loading…"))
	case v.snap.State == timeline.StateExhausted:
		b.WriteString(helpStyle.Render("end of timeline"))
	}
	return b.String()
}

func (m appModel) footer() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString("j/k move  r refresh  tab timeline  enter thread  f fav  b boost  m bookmark  " +
		"c copy  n new  R reply  e edit  d delete  F follow  1-4 vote  i about  q quit")
	return b.String()
}

// visibleWindow picks the items drawn around the cursor.
func visibleWindow(total, cursor, height int) (from, to int) {
	size := 5
	if height > 0 {
		size = max(height/7, 2)
	}
	from = max(cursor-size/2, 0)
	to = min(from+size, total)
	from = max(to-size, 0)
	return from, to
}

func withPoll(s models.Status, poll models.Poll) models.Status {
	if s.Reblog != nil {
		target := *s.Reblog
		target.Poll = &poll
		s.Reblog = &target
		return s
	}
	s.Poll = &poll
	return s
}

func statusURL(s models.Status) string {
	if s.URL != "" {
		return s.URL
	}
	return s.URI
}

func firstLine(s models.Status) string {
	text := s.SpoilerText
	if text == "" {
		text = s.Content
	}
	line, _, _ := strings.Cut(strings.TrimSpace(utils.HTMLToText(text)), "\n")
	return line
}
