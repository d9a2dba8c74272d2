package cmd

import (
	"testing"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
)

func TestDailySeriesData(t *testing.T) {
	daily := []api.DailyStat{
		{Day: "2026-08-29", Tweets: 5},
		{Day: "2026-08-28", Tweets: 3},
		{Day: "2026-08-27", Tweets: 9},
	}

	series, caption := dailySeriesData(daily)
	if len(series) != 3 {
		t.Fatalf("series length = %d, want 3", len(series))
	}
	// Reversed into chronological order: oldest first
	want := []float64{9, 3, 5}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("series[%d] = %v, want %v", i, series[i], want[i])
		}
	}
	if caption != "2026-08-27 .. 2026-08-29" {
		t.Errorf("caption = %q", caption)
	}
}

func TestDailySeriesDataEmpty(t *testing.T) {
	series, caption := dailySeriesData(nil)
	if series != nil || caption != "" {
		t.Errorf("got %v, %q, want empty", series, caption)
	}
}

func TestTweetRowsFallsBackToUserName(t *testing.T) {
	rows := tweetRows([]api.Tweet{
		{Query: "posof", UserName: "Jane", Text: "road closed"},
	})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0][2] != "Jane" {
		t.Errorf("user column = %q, want %q", rows[0][2], "Jane")
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"0123456789", 10, "0123456789"},
		{"0123456789a", 10, "012345678…"},
		{"çğışöü long enough türkçe", 10, "çğışöü lo…"},
	}
	for _, tt := range tests {
		if got := clip(tt.in, tt.n); got != tt.want {
			t.Errorf("clip(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
