package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(tweetCount, newsCount int, filterLabel string, width int, searching, refreshing bool) string {
	left := fmt.Sprintf(" %d tweets · %d news", tweetCount, newsCount)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	if refreshing {
		left += " (refreshing...)"
	}

	right := " h home  / search  f filter  r refresh  q quit "
	if searching {
		right = " esc cancel  enter search "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}

func renderBottomBar(hints string, width int) string {
	right := " " + hints + " "
	gap := width - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusBarStyle.Width(width).Render(fmt.Sprintf("%*s", gap, "") + right)
}
