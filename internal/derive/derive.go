// Package derive turns raw API collections into display-ready
// aggregates. Everything here is pure and synchronous; callers
// recompute when their inputs change.
package derive

import (
	"time"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
)

const (
	recentTweetCount = 20
	recentNewsCount  = 15
	timelineCount    = 50
	dailyDays        = 14
	topSliceCount    = 8
)

// timeLayouts are the timestamp shapes the API and the upstream worker
// have been seen to emit.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RubyDate, // twitter's created_at
}

// ParseTime parses an API timestamp string. Empty or unparsable input
// yields the zero time, which sorts before everything else.
func ParseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// TweetTime is the effective timestamp of a tweet: creation time when
// present, fetch time otherwise.
func TweetTime(t api.Tweet) time.Time {
	if ts := ParseTime(t.CreatedAt); !ts.IsZero() {
		return ts
	}
	return ParseTime(t.FetchedAt)
}

// NewsTime is the effective timestamp of a news item: fetch time when
// present, publication time otherwise.
func NewsTime(n api.News) time.Time {
	if ts := ParseTime(n.FetchedAt); !ts.IsZero() {
		return ts
	}
	return ParseTime(n.CreatedAt)
}

// RecentTweets keeps the first tweets of the collection in API order.
func RecentTweets(tweets []api.Tweet) []api.Tweet {
	return head(tweets, recentTweetCount)
}

// RecentNews keeps the first news items of the collection in API order.
func RecentNews(news []api.News) []api.News {
	return head(news, recentNewsCount)
}

// DistinctQueries collects the unique query tags of a tweet
// collection, preserving first-seen order.
func DistinctQueries(tweets []api.Tweet) []string {
	seen := make(map[string]bool, len(tweets))
	var out []string
	for _, t := range tweets {
		if t.Query == "" || seen[t.Query] {
			continue
		}
		seen[t.Query] = true
		out = append(out, t.Query)
	}
	return out
}

// Summary backs the stat cards at the top of the dashboard.
type Summary struct {
	TotalTweets     int
	DistinctQueries int
	LastTweetAt     time.Time
	LastNewsAt      time.Time
}

// Summarize derives the stat-card values. The API returns both
// collections newest first, so "most recent" is the first element.
func Summarize(tweets []api.Tweet, news []api.News) Summary {
	s := Summary{
		TotalTweets:     len(tweets),
		DistinctQueries: len(DistinctQueries(tweets)),
	}
	if len(tweets) > 0 {
		s.LastTweetAt = TweetTime(tweets[0])
	}
	if len(news) > 0 {
		s.LastNewsAt = NewsTime(news[0])
	}
	return s
}

// TimelinePoint is one slot of the rank-ordered timeline strip. Rank is
// the position in the fetched collection, not elapsed time.
type TimelinePoint struct {
	Rank  int
	Query string
	At    time.Time
}

// Timeline projects the first tweets onto (rank, query, time) points
// for the uniform-height strip.
func Timeline(tweets []api.Tweet) []TimelinePoint {
	tweets = head(tweets, timelineCount)
	points := make([]TimelinePoint, len(tweets))
	for i, t := range tweets {
		points[i] = TimelinePoint{Rank: i, Query: t.Query, At: TweetTime(t)}
	}
	return points
}

// DailySeries prepares the daily chart: reverse the day-ordered
// collection, then keep the last entries of the reversal. With the
// API's most-recent-first ordering this yields the newest days,
// oldest-of-the-slice first. The reverse-then-slice order matches the
// original dashboard and is relied on by its chart.
func DailySeries(stats []api.DailyStat) []api.DailyStat {
	reversed := make([]api.DailyStat, len(stats))
	for i, s := range stats {
		reversed[len(stats)-1-i] = s
	}
	if len(reversed) > dailyDays {
		reversed = reversed[len(reversed)-dailyDays:]
	}
	return reversed
}

// TopSlices keeps the first entries of the top-queries response
// verbatim; the API pre-sorts by total.
func TopSlices(stats []api.QueryStat) []api.QueryStat {
	return head(stats, topSliceCount)
}

func head[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
