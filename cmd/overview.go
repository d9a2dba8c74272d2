package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
	"github.com/kerimyeniyildiz/lastmonitor/internal/derive"
	"github.com/kerimyeniyildiz/lastmonitor/internal/output"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print a one-shot dashboard snapshot",
	Long:  "Fetch all endpoints once and print summary stats, the daily chart, top queries, and the latest items. Endpoints that fail are reported and skipped.",
	RunE:  runOverview,
}

func runOverview(cmd *cobra.Command, args []string) error {
	cfg, client, err := buildDeps()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.APITimeout())
	defer cancel()

	var (
		tweets []api.Tweet
		news   []api.News
		daily  []api.DailyStat
		top    []api.QueryStat

		tweetsErr, newsErr, dailyErr, topErr error
	)

	// Each endpoint fails on its own; one bad endpoint must not
	// blank the whole snapshot.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tweets, tweetsErr = client.Tweets(gctx, api.TweetsParams{Limit: cfg.TweetLimit()})
		return nil
	})
	g.Go(func() error {
		news, newsErr = client.News(gctx, api.NewsParams{Limit: cfg.NewsLimit()})
		return nil
	})
	g.Go(func() error {
		daily, dailyErr = client.DailyStats(gctx)
		return nil
	})
	g.Go(func() error {
		top, topErr = client.TopQueries(gctx, cfg.TopQueryLimit())
		return nil
	})
	g.Wait()

	p := output.NewPrinter()

	if tweetsErr != nil && newsErr != nil && dailyErr != nil && topErr != nil {
		p.Error("all endpoints failed")
		return fmt.Errorf("tweets: %w", tweetsErr)
	}

	if tweetsErr == nil {
		s := derive.Summarize(tweets, news)
		p.Header("Summary")
		p.Print("Tweets: %d   Queries: %d   Last tweet: %s   Last news: %s",
			s.TotalTweets, s.DistinctQueries, overviewTime(s.LastTweetAt), overviewTime(s.LastNewsAt))
	} else {
		p.Warning("tweets unavailable: %v", tweetsErr)
	}

	if dailyErr == nil {
		if series, days := dailySeriesData(daily); len(series) > 0 {
			p.Header("Daily Tweets")
			p.Print("%s", asciigraph.Plot(series, asciigraph.Height(8), asciigraph.Width(60)))
			p.Print("%s", p.Dim(days))
		}
	} else {
		p.Warning("daily stats unavailable: %v", dailyErr)
	}

	if topErr == nil && len(top) > 0 {
		p.Header("Top Queries")
		p.Table([]string{"Query", "Total"}, topQueryRows(top))
	} else if topErr != nil {
		p.Warning("top queries unavailable: %v", topErr)
	}

	if tweetsErr == nil && len(tweets) > 0 {
		p.Header("Latest Tweets")
		p.Table([]string{"Time", "Query", "User", "Text"}, tweetRows(tweets))
	}

	if newsErr == nil && len(news) > 0 {
		p.Header("Latest News")
		p.Table([]string{"Time", "Source", "Link"}, newsRows(news))
	} else if newsErr != nil {
		p.Warning("news unavailable: %v", newsErr)
	}

	return nil
}

func overviewTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

// dailySeriesData converts the trimmed daily window into plot values
// plus a day-range caption.
func dailySeriesData(daily []api.DailyStat) ([]float64, string) {
	window := derive.DailySeries(daily)
	if len(window) == 0 {
		return nil, ""
	}
	series := make([]float64, len(window))
	for i, d := range window {
		series[i] = float64(d.Tweets)
	}
	caption := window[0].Day
	if last := window[len(window)-1].Day; last != caption {
		caption += " .. " + last
	}
	return series, caption
}

func topQueryRows(top []api.QueryStat) [][]string {
	rows := make([][]string, 0, len(top))
	for _, q := range derive.TopSlices(top) {
		rows = append(rows, []string{q.Query, strconv.Itoa(q.Total)})
	}
	return rows
}

func tweetRows(tweets []api.Tweet) [][]string {
	recent := derive.RecentTweets(tweets)
	rows := make([][]string, 0, len(recent))
	for _, t := range recent {
		user := t.UserHandle
		if user == "" {
			user = t.UserName
		}
		rows = append(rows, []string{
			overviewTime(derive.TweetTime(t)), t.Query, user, clip(t.Text, 60),
		})
	}
	return rows
}

func newsRows(news []api.News) [][]string {
	recent := derive.RecentNews(news)
	rows := make([][]string, 0, len(recent))
	for _, n := range recent {
		rows = append(rows, []string{
			overviewTime(derive.NewsTime(n)), n.Source, clip(n.Link, 60),
		})
	}
	return rows
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
