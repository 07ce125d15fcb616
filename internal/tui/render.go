package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/tootline/internal/utils"
	"github.com/MKhiriev/tootline/models"
)

const defaultWidth = 80

func renderStatus(s models.Status, selected bool, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	target := s.Target()
	var b strings.Builder

	if s.Reblog != nil {
		b.WriteString(boostedStyle.Render("⟳ " + s.Account.DisplayNameOrUsername() + " boosted"))
		b.WriteString("\n")
	}

	b.WriteString(authorStyle.Render(target.Account.DisplayNameOrUsername()))
	b.WriteString(" ")
	b.WriteString(acctStyle.Render("@" + target.Account.Acct))
	if !target.CreatedAt.IsZero() {
		b.WriteString(acctStyle.Render(" · " + target.CreatedAt.Local().Format("2006-01-02 15:04")))
	}
	if target.EditedAt != nil {
		b.WriteString(acctStyle.Render(" (edited)"))
	}
	b.WriteString("\n")

	if target.SpoilerText != "" {
		b.WriteString(warningStyle.Render("CW: " + target.SpoilerText))
		b.WriteString("\n")
	}

	if text := utils.HTMLToText(target.Content); text != "" {
		b.WriteString(text)
		b.WriteString("\n")
	}

	for _, media := range target.MediaAttachments {
		line := "[" + string(media.Type) + "]"
		if media.Description != "" {
			line += " " + media.Description
		}
		b.WriteString(acctStyle.Render(fitText(line, width-4)))
		b.WriteString("\n")
	}

	if target.Poll != nil {
		b.WriteString(renderPoll(*target.Poll))
	}

	b.WriteString(renderCounters(*target))

	style := statusStyle
	if selected {
		style = selectedStatusStyle
	}
	return style.Width(width - 2).Render(b.String())
}

func renderPoll(p models.Poll) string {
	var b strings.Builder
	for i, option := range p.Options {
		mark := " "
		for _, own := range p.OwnVotes {
			if own == i {
				mark = "✓"
			}
		}
		fmt.Fprintf(&b, "%s %d) %-24s %3d%%\n", mark, i+1, fitText(option.Title, 24), p.Percent(i))
	}
	state := fmt.Sprintf("%d votes", p.VotesCount)
	if p.Expired {
		state += " · closed"
	} else if p.Voted {
		state += " · voted"
	}
	b.WriteString(acctStyle.Render(state))
	b.WriteString("\n")
	return b.String()
}

func renderCounters(s models.Status) string {
	flag := func(on bool, text string) string {
		if on {
			return activeStyle.Render(text)
		}
		return text
	}

	parts := []string{
		fmt.Sprintf("↩ %d", s.RepliesCount),
		flag(s.Reblogged, fmt.Sprintf("⟳ %d", s.ReblogsCount)),
		flag(s.Favourited, fmt.Sprintf("★ %d", s.FavouritesCount)),
	}
	if s.Bookmarked {
		parts = append(parts, activeStyle.Render("bookmarked"))
	}
	if s.Visibility != "" && s.Visibility != models.VisibilityPublic {
		parts = append(parts, acctStyle.Render(string(s.Visibility)))
	}
	return strings.Join(parts, "   ")
}
