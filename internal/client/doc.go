// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the tootline application runtime.
//
// It binds the terminal UI, the client services and the background snapshot
// job into a single process lifecycle, and builds the streaming channels the
// timeline service attaches to live feeds.
package client
