package tui

import (
	"strings"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
	"github.com/kerimyeniyildiz/lastmonitor/internal/derive"
	"github.com/kerimyeniyildiz/lastmonitor/internal/livefeed"
)

// section is one independently fetched data slot. A failing section
// renders its error inline and never blocks the others.
type section struct {
	loading bool
	err     error
}

func (s section) placeholder(width, height int) (string, bool) {
	switch {
	case s.err != nil:
		return errorStyle.Render(truncateStr(s.err.Error(), width*height/2)), true
	case s.loading:
		return centerText("loading...", width, height), true
	}
	return "", false
}

func renderTweetList(tweets []api.Tweet, cursor int, focused bool, width, height int) string {
	if len(tweets) == 0 {
		return centerText("no tweets", width, height)
	}

	// Two lines per item plus a separator line.
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}
	start := 0
	if focused && cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(tweets) {
		end = len(tweets)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		t := tweets[i]
		text := truncateStr(oneLine(t.Text), width-4)
		if focused && i == cursor {
			b.WriteString(itemSelectedStyle.Render("> " + text))
		} else {
			b.WriteString(itemTitleStyle.Render("  " + text))
		}
		b.WriteString("\n")
		b.WriteString("  " + itemSourceStyle.Render("@"+t.UserHandle) +
			" " + itemTimeStyle.Render("· "+t.Query+" · "+relativeTime(derive.TweetTime(t))))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func renderNewsList(news []api.News, cursor int, focused bool, width, height int) string {
	if len(news) == 0 {
		return centerText("no news", width, height)
	}

	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}
	start := 0
	if focused && cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(news) {
		end = len(news)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		n := news[i]
		link := truncateStr(n.Link, width-4)
		if focused && i == cursor {
			b.WriteString(itemSelectedStyle.Render("> " + link))
		} else {
			b.WriteString(itemTitleStyle.Render("  " + link))
		}
		b.WriteString("\n")
		b.WriteString("  " + itemSourceStyle.Render(n.Source) +
			" " + itemTimeStyle.Render("· "+relativeTime(derive.NewsTime(n))))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func renderFeedList(items []livefeed.Item, cursor int, width, height int) string {
	if len(items) == 0 {
		return centerText("no items match the filter", width, height)
	}

	var b strings.Builder
	for i, it := range items {
		badge := itemSourceStyle.Render(string(it.Kind))
		text := truncateStr(oneLine(it.Text), width-14)
		line := badge + " " + text
		if i == cursor {
			line = itemSelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		b.WriteString("     " + itemTimeStyle.Render(it.Meta+" · "+relativeTime(it.At)) + "\n")
	}
	return b.String()
}
