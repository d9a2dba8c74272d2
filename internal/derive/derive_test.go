package derive

import (
	"fmt"
	"testing"
	"time"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		zero  bool
	}{
		{"2026-08-21T10:30:00Z", false},
		{"2026-08-21T10:30:00.123456+03:00", false},
		{"2026-08-21 10:30:00", false},
		{"Mon Jan 02 15:04:05 -0700 2006", false},
		{"", true},
		{"not a date", true},
	}
	for _, tt := range tests {
		got := ParseTime(tt.input)
		if got.IsZero() != tt.zero {
			t.Errorf("ParseTime(%q).IsZero() = %v, want %v", tt.input, got.IsZero(), tt.zero)
		}
	}
}

func TestTweetTimeFallsBackToFetched(t *testing.T) {
	tweet := api.Tweet{FetchedAt: "2026-08-20T09:00:00Z"}
	got := TweetTime(tweet)
	want := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TweetTime without created_at = %v, want %v", got, want)
	}

	tweet.CreatedAt = "2026-08-19T08:00:00Z"
	got = TweetTime(tweet)
	want = time.Date(2026, 8, 19, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TweetTime with created_at = %v, want %v", got, want)
	}
}

func TestNewsTimeFallsBackToCreated(t *testing.T) {
	news := api.News{CreatedAt: "2026-08-18T07:00:00Z"}
	got := NewsTime(news)
	want := time.Date(2026, 8, 18, 7, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NewsTime without fetched_at = %v, want %v", got, want)
	}

	news.FetchedAt = "2026-08-21T06:00:00Z"
	got = NewsTime(news)
	want = time.Date(2026, 8, 21, 6, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NewsTime with fetched_at = %v, want %v", got, want)
	}
}

func TestDistinctQueriesFirstSeenOrder(t *testing.T) {
	tweets := []api.Tweet{
		{Query: "a"}, {Query: "b"}, {Query: "a"}, {Query: "c"},
	}
	got := DistinctQueries(tweets)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("DistinctQueries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DistinctQueries[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecentSlicing(t *testing.T) {
	tweets := make([]api.Tweet, 30)
	for i := range tweets {
		tweets[i] = api.Tweet{ID: fmt.Sprintf("t%d", i)}
	}
	got := RecentTweets(tweets)
	if len(got) != 20 {
		t.Fatalf("expected 20 recent tweets, got %d", len(got))
	}
	if got[0].ID != "t0" || got[19].ID != "t19" {
		t.Error("recent tweets must keep API order")
	}

	news := make([]api.News, 30)
	if n := len(RecentNews(news)); n != 15 {
		t.Errorf("expected 15 recent news, got %d", n)
	}

	short := RecentTweets(tweets[:3])
	if len(short) != 3 {
		t.Errorf("short collections pass through, got %d", len(short))
	}
}

func TestSummarize(t *testing.T) {
	tweets := []api.Tweet{
		{Query: "a", CreatedAt: "2026-08-21T10:00:00Z"},
		{Query: "b", FetchedAt: "2026-08-21T09:00:00Z"},
		{Query: "a"},
	}
	news := []api.News{
		{CreatedAt: "2026-08-21T08:00:00Z"}, // no fetched_at: fallback applies
	}

	s := Summarize(tweets, news)
	if s.TotalTweets != 3 {
		t.Errorf("TotalTweets = %d, want 3", s.TotalTweets)
	}
	if s.DistinctQueries != 2 {
		t.Errorf("DistinctQueries = %d, want 2", s.DistinctQueries)
	}
	if want := time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC); !s.LastTweetAt.Equal(want) {
		t.Errorf("LastTweetAt = %v, want %v", s.LastTweetAt, want)
	}
	if want := time.Date(2026, 8, 21, 8, 0, 0, 0, time.UTC); !s.LastNewsAt.Equal(want) {
		t.Errorf("LastNewsAt = %v, want %v", s.LastNewsAt, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.TotalTweets != 0 || s.DistinctQueries != 0 {
		t.Errorf("empty summary should be zero, got %+v", s)
	}
	if !s.LastTweetAt.IsZero() || !s.LastNewsAt.IsZero() {
		t.Error("empty summary timestamps should be zero")
	}
}

func TestTimelineCapsAtFifty(t *testing.T) {
	tweets := make([]api.Tweet, 60)
	for i := range tweets {
		tweets[i] = api.Tweet{Query: "q"}
	}
	points := Timeline(tweets)
	if len(points) != 50 {
		t.Fatalf("expected 50 timeline points, got %d", len(points))
	}
	for i, p := range points {
		if p.Rank != i {
			t.Fatalf("point %d has rank %d; the x-axis is rank order", i, p.Rank)
		}
	}
}

func TestDailySeriesReverseThenSlice(t *testing.T) {
	// d1 is the most recent day, as returned by the API.
	stats := make([]api.DailyStat, 20)
	for i := range stats {
		stats[i] = api.DailyStat{Day: fmt.Sprintf("d%d", i+1)}
	}

	got := DailySeries(stats)
	if len(got) != 14 {
		t.Fatalf("expected 14 entries, got %d", len(got))
	}
	// Reverse of d1..d20 is d20..d1; its last 14 entries are d14..d1.
	for i := 0; i < 14; i++ {
		want := fmt.Sprintf("d%d", 14-i)
		if got[i].Day != want {
			t.Errorf("DailySeries[%d] = %q, want %q", i, got[i].Day, want)
		}
	}
}

func TestDailySeriesShortInput(t *testing.T) {
	stats := []api.DailyStat{{Day: "d1"}, {Day: "d2"}, {Day: "d3"}}
	got := DailySeries(stats)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Day != "d3" || got[2].Day != "d1" {
		t.Errorf("short input must still be reversed, got %v", got)
	}
}

func TestTopSlicesFirstEight(t *testing.T) {
	stats := make([]api.QueryStat, 12)
	for i := range stats {
		stats[i] = api.QueryStat{Query: fmt.Sprintf("q%d", i), Total: 100 - i}
	}
	got := TopSlices(stats)
	if len(got) != 8 {
		t.Fatalf("expected 8 slices, got %d", len(got))
	}
	for i := range got {
		if got[i].Query != stats[i].Query || got[i].Total != stats[i].Total {
			t.Errorf("slice %d modified: got %+v, want %+v", i, got[i], stats[i])
		}
	}
}
