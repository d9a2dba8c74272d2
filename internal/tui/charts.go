package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
	"github.com/kerimyeniyildiz/lastmonitor/internal/derive"
)

// renderDailyChart draws the per-day tweet volume as an area chart.
// series comes pre-ordered from derive.DailySeries.
func renderDailyChart(series []api.DailyStat, width, height int) string {
	if len(series) == 0 {
		return dimStyle.Render("no daily data")
	}
	if height < 3 {
		height = 3
	}

	data := make([]float64, len(series))
	for i, s := range series {
		data[i] = float64(s.Tweets)
	}

	plot := asciigraph.Plot(data,
		asciigraph.Height(height-2),
		asciigraph.Width(width-8),
	)

	caption := dimStyle.Render(fmt.Sprintf("%s → %s", series[0].Day, series[len(series)-1].Day))
	return plot + "\n" + caption
}

// renderTopQueries draws the top-queries distribution as a bar chart,
// one colored bar per query tag.
func renderTopQueries(stats []api.QueryStat, width, height int) string {
	if len(stats) == 0 {
		return dimStyle.Render("no query data")
	}
	if height < 3 {
		height = 3
	}

	bc := barchart.New(width, height)
	for i, q := range stats {
		bc.Push(barchart.BarData{
			Label: truncateStr(q.Query, 8),
			Values: []barchart.BarValue{{
				Name:  q.Query,
				Value: float64(q.Total),
				Style: lipgloss.NewStyle().Foreground(queryColor(i)),
			}},
		})
	}
	bc.Draw()
	return bc.View()
}

// renderTimeline draws the rank-ordered strip of the latest tweets:
// one uniform-height block per tweet, colored by query tag, newest on
// the left. The x-axis is position in the collection, not elapsed
// time.
func renderTimeline(points []derive.TimelinePoint, queries []string, width int) string {
	if len(points) == 0 {
		return dimStyle.Render("no tweets")
	}

	colorOf := make(map[string]lipgloss.AdaptiveColor, len(queries))
	for i, q := range queries {
		colorOf[q] = queryColor(i)
	}

	var strip strings.Builder
	for i, p := range points {
		if i >= width-2 {
			break
		}
		c, ok := colorOf[p.Query]
		if !ok {
			c = colorDim
		}
		strip.WriteString(lipgloss.NewStyle().Foreground(c).Render("▇"))
	}

	var legend []string
	for _, q := range queries {
		legend = append(legend, lipgloss.NewStyle().Foreground(colorOf[q]).Render("■ "+q))
	}

	out := strip.String()
	if len(legend) > 0 {
		out += "\n" + truncateStr(strings.Join(legend, "  "), width)
	}
	return out
}

// renderStatCards draws the four summary cards.
func renderStatCards(s derive.Summary, width int) string {
	cards := []struct {
		title string
		value string
	}{
		{"tweets", fmt.Sprintf("%d", s.TotalTweets)},
		{"queries", fmt.Sprintf("%d", s.DistinctQueries)},
		{"last tweet", relativeTime(s.LastTweetAt)},
		{"last news", relativeTime(s.LastNewsAt)},
	}

	cardWidth := width/len(cards) - 2
	if cardWidth < 10 {
		cardWidth = 10
	}

	rendered := make([]string, len(cards))
	for i, c := range cards {
		body := cardTitleStyle.Render(c.title) + "\n" + cardValueStyle.Render(c.value)
		rendered[i] = cardStyle.Width(cardWidth).Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
