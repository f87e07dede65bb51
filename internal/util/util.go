package util

import (
	"fmt"
	"strings"
	"time"
)

// ResolveLink turns a relative in-app path into an absolute URL under baseURL.
// Absolute and empty links are returned unchanged.
func ResolveLink(baseURL, link string) string {
	link = strings.TrimSpace(link)
	if link == "" || baseURL == "" {
		return link
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}

	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(link, "/")
}

// FormatDuration formats duration into human readable format (e.g., "7d0h", "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	if duration < 24*time.Hour {
		h := int(duration.Hours())
		m := int(duration.Minutes()) % 60

		return fmt.Sprintf("%dh%dm", h, m)
	}

	d := int(duration.Hours()) / 24
	h := int(duration.Hours()) % 24

	return fmt.Sprintf("%dd%dh", d, h)
}
