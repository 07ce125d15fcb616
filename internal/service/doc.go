// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client use cases on top of the instance
// adapter, the live channel and the snapshot store.
//
// [TimelineService] turns a [models.TimelineRef] into a self-updating
// [Feed]: a timeline.List fed by a page fetcher, wired to the live channel
// for new, edited and deleted statuses, and warm-started from the last
// stored snapshot. The remaining services cover status actions, media
// uploads, composer suggestions, accounts and the periodic snapshot job.
package service
