package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerimyeniyildiz/lastmonitor/internal/derive"
)

func (a *App) renderDashboard() string {
	// Header
	headerLeft := headerStyle.Render("lastmon")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Query-tag filter bar; the search input replaces it while typing.
	filter := a.filterBar.render(a.width)
	if a.mode == modeSearch {
		filter = a.searchInput.View()
	}

	cards := renderStatCards(derive.Summarize(a.tweets, a.news), a.width)

	charts := a.renderChartsRow()

	queries := derive.DistinctQueries(a.tweets)
	timeline := sectionTitleStyle.Render("latest activity") + "\n" +
		renderTimeline(derive.Timeline(a.tweets), queries, a.width-2)

	lists := a.renderListsRow()

	status := renderStatusBar(
		len(a.tweets), len(a.news),
		a.filterBar.activeLabel(),
		a.width,
		a.mode == modeSearch,
		a.refreshing,
	)
	if a.refreshing {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filter, cards, charts, timeline, lists, status)
}

func (a *App) renderChartsRow() string {
	chartHeight := 8
	halfWidth := a.width/2 - 1

	daily := sectionTitleStyle.Render("tweets per day") + "\n"
	if body, ok := a.secDaily.placeholder(halfWidth-4, chartHeight); ok {
		daily += body
	} else {
		daily += renderDailyChart(derive.DailySeries(a.daily), halfWidth-4, chartHeight)
	}

	top := sectionTitleStyle.Render("top queries") + "\n"
	if body, ok := a.secTop.placeholder(halfWidth-4, chartHeight); ok {
		top += body
	} else {
		top += renderTopQueries(derive.TopSlices(a.top), halfWidth-4, chartHeight)
	}

	left := paneStyle.Width(halfWidth - 2).Height(chartHeight + 1).Render(daily)
	right := paneStyle.Width(halfWidth - 2).Height(chartHeight + 1).Render(top)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a *App) renderListsRow() string {
	listHeight := a.height - 22 // header, filter, cards, charts, timeline, status
	if listHeight < 6 {
		listHeight = 6
	}
	halfWidth := a.width/2 - 1
	innerW := halfWidth - 4

	tweets := sectionTitleStyle.Render("recent tweets") + "\n"
	if body, ok := a.secTweets.placeholder(innerW, listHeight); ok {
		tweets += body
	} else {
		tweets += renderTweetList(derive.RecentTweets(a.tweets), a.cursor, a.focus == focusTweets, innerW, listHeight-1)
	}

	news := sectionTitleStyle.Render("recent news") + "\n"
	if body, ok := a.secNews.placeholder(innerW, listHeight); ok {
		news += body
	} else {
		news += renderNewsList(derive.RecentNews(a.news), a.cursor, a.focus == focusNews, innerW, listHeight-1)
	}

	tweetStyle, newsStyle := paneStyle, paneStyle
	if a.focus == focusTweets {
		tweetStyle = paneActiveStyle
	} else {
		newsStyle = paneActiveStyle
	}

	left := tweetStyle.Width(halfWidth - 2).Height(listHeight).Render(tweets)
	right := newsStyle.Width(halfWidth - 2).Height(listHeight).Render(news)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
