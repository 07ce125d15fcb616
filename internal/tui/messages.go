package tui

import (
	"github.com/MKhiriev/tootline/internal/service"
	"github.com/MKhiriev/tootline/models"
)

type feedOpenedMsg struct {
	feed *service.Feed
	root *models.Status
	push bool
	err  error
}

// feedChangedMsg asks the model to re-read its feeds.
type feedChangedMsg struct{}

// feedErrMsg reports the outcome of a fetch started on feed. loadMore marks
// results of the automatic next-page load.
type feedErrMsg struct {
	feed     *service.Feed
	loadMore bool
	err      error
}

type meLoadedMsg struct {
	me  models.Account
	err error
}

type statusChangedMsg struct {
	status models.Status
	err    error
}

type statusDeletedMsg struct {
	id  string
	err error
}

type statusPostedMsg struct {
	status models.Status
	edited bool
	err    error
}

type pollVotedMsg struct {
	statusID string
	poll     models.Poll
	err      error
}

type relationshipMsg struct {
	acct string
	rel  models.Relationship
	err  error
}

type copiedMsg struct {
	url string
	err error
}

type suggestionsMsg struct {
	token string
	items []string
	err   error
}

type mediaUploadedMsg struct {
	attachments []models.MediaAttachment
	err         error
}

type openOverlayMsg struct {
	name    string
	payload any
}

type closeOverlayMsg struct{}
