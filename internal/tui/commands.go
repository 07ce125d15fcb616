package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/tootline/internal/service"
	"github.com/MKhiriev/tootline/models"
)

func (m appModel) cmdLoadMe() tea.Cmd {
	ctx, accounts := m.ctx, m.services.AccountService
	return func() tea.Msg {
		me, err := accounts.Me(ctx)
		return meLoadedMsg{me: me, err: err}
	}
}

func (m appModel) cmdOpenFeed(ref models.TimelineRef) tea.Cmd {
	ctx, timelines, onChange := m.ctx, m.services.TimelineService, m.onChange
	return func() tea.Msg {
		feed, err := timelines.OpenFeed(ctx, ref, onChange)
		return feedOpenedMsg{feed: feed, err: err}
	}
}

func (m appModel) cmdOpenThread(id string) tea.Cmd {
	ctx, timelines, statuses, onChange := m.ctx, m.services.TimelineService, m.services.StatusService, m.onChange
	return func() tea.Msg {
		root, err := statuses.Refresh(ctx, id)
		if err != nil {
			return feedOpenedMsg{err: err}
		}
		feed, err := timelines.OpenFeed(ctx, models.TimelineRef{Kind: models.TimelineThread, Arg: id}, onChange)
		return feedOpenedMsg{feed: feed, root: &root, push: true, err: err}
	}
}

func (m appModel) cmdStartFeed(feed *service.Feed) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return feedErrMsg{feed: feed, err: feed.Start(ctx)}
	}
}

func (m appModel) cmdRefresh(feed *service.Feed) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return feedErrMsg{feed: feed, err: feed.Refresh(ctx)}
	}
}

func (m appModel) cmdLoadMore(feed *service.Feed) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return feedErrMsg{feed: feed, loadMore: true, err: feed.LoadMore(ctx)}
	}
}

type toggleFunc func(ctx context.Context, s models.Status) (models.Status, error)

func (m appModel) cmdToggle(s models.Status, toggle toggleFunc) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		updated, err := toggle(ctx, s)
		return statusChangedMsg{status: updated, err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx, statuses := m.ctx, m.services.StatusService
	return func() tea.Msg {
		return statusDeletedMsg{id: id, err: statuses.Delete(ctx, id)}
	}
}

func (m appModel) cmdVote(statusID string, poll models.Poll, choice int) tea.Cmd {
	ctx, statuses := m.ctx, m.services.StatusService
	return func() tea.Msg {
		updated, err := statuses.Vote(ctx, poll, []int{choice})
		return pollVotedMsg{statusID: statusID, poll: updated, err: err}
	}
}

func (m appModel) cmdToggleFollow(account models.Account) tea.Cmd {
	ctx, accounts := m.ctx, m.services.AccountService
	return func() tea.Msg {
		rel, err := accounts.ToggleFollow(ctx, account.ID)
		return relationshipMsg{acct: account.Acct, rel: rel, err: err}
	}
}

func (m appModel) cmdCopy(url string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{url: url, err: copyText(url)}
	}
}
