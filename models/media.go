// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// MediaType is the kind of a media attachment.
type MediaType string

const (
	MediaImage   MediaType = "image"
	MediaVideo   MediaType = "video"
	MediaGifv    MediaType = "gifv"
	MediaAudio   MediaType = "audio"
	MediaUnknown MediaType = "unknown"
)

// MediaAttachment is a file attached to a status.
type MediaAttachment struct {
	ID          string    `json:"id"`
	Type        MediaType `json:"type"`
	URL         string    `json:"url"`
	PreviewURL  string    `json:"preview_url"`
	RemoteURL   string    `json:"remote_url,omitempty"`
	Description string    `json:"description,omitempty"`
	Blurhash    string    `json:"blurhash,omitempty"`
}

// MediaUpload is a local file waiting to be uploaded.
type MediaUpload struct {
	FileName    string
	Description string
	Reader      io.Reader
}
