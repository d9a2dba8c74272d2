package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerimyeniyildiz/lastmonitor/internal/livefeed"
)

// liveItems is the merged, filtered, capped feed for the live view.
func (a *App) liveItems() []livefeed.Item {
	return livefeed.Latest(
		livefeed.Merge(a.tweets, a.news),
		a.catBar.filter(),
		livefeed.DefaultSize,
	)
}

func (a *App) renderLive() string {
	headerLeft := headerStyle.Render("lastmon · live")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	catFilter := a.catBar.render(a.width)
	if a.mode == modeCategory {
		catFilter = a.categoryInput.View()
	}

	contentHeight := a.height - 4
	if contentHeight < 4 {
		contentHeight = 4
	}

	items := a.liveItems()

	var body string
	switch {
	case a.secTweets.err != nil && a.secNews.err != nil:
		body = errorStyle.Render("tweets: "+a.secTweets.err.Error()) + "\n" +
			errorStyle.Render("news: "+a.secNews.err.Error())
	case a.secTweets.loading && a.secNews.loading:
		body = centerText("loading...", a.width-4, contentHeight)
	default:
		body = renderFeedList(items, a.liveCursor, a.width-6, contentHeight-2)
		// One side may still have failed; show it under the list.
		if a.secTweets.err != nil {
			body += "\n" + errorStyle.Render("tweets: "+truncateStr(a.secTweets.err.Error(), a.width-12))
		}
		if a.secNews.err != nil {
			body += "\n" + errorStyle.Render("news: "+truncateStr(a.secNews.err.Error(), a.width-12))
		}
	}

	pane := paneStyle.Width(a.width - 2).Height(contentHeight).Render(body)

	label := a.catBar.filter().Label()
	hints := "c category  v value  x clear  o open  r refresh  d dashboard  h home  q quit"
	if a.mode == modeCategory {
		hints = "esc cancel  enter apply"
	}
	status := statusBarStyle.Width(a.width).Render(
		fmt.Sprintf(" %d items · %s", len(items), label) + "  " + dimStyle.Render(hints))
	if a.refreshing {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, catFilter, pane, status)
}
