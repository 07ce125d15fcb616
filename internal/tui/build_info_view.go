// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/tootline/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, instance string) string {
	var b strings.Builder

	b.WriteString("Application: tootline\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\nDate: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\nCommit: ")
	b.WriteString(info.BuildCommit())
	if instance != "" {
		b.WriteString("\nSigned in as: ")
		b.WriteString(instance)
	}

	return overlayBoxStyle.Render(renderPage("ABOUT", b.String(), "i / esc: back"))
}
