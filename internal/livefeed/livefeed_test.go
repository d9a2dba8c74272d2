package livefeed

import (
	"testing"
	"time"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
)

func TestMergeNormalizes(t *testing.T) {
	tweets := []api.Tweet{
		{Text: "road closed", Link: "https://x.com/a/status/1", UserHandle: "driver", CreatedAt: "2026-08-21T10:00:00Z"},
	}
	news := []api.News{
		{Link: "https://example.com/haber/1", Source: "example.com", FetchedAt: "2026-08-21T11:00:00Z"},
	}

	items := Merge(tweets, news)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Kind != KindTweet || items[0].Meta != "@driver" {
		t.Errorf("unexpected tweet item: %+v", items[0])
	}
	if items[1].Kind != KindNews || items[1].Meta != "example.com" {
		t.Errorf("unexpected news item: %+v", items[1])
	}
	if items[1].Text != items[1].Link {
		t.Error("news items carry their link as display text")
	}
}

func TestMergeFallsBackToUserName(t *testing.T) {
	items := Merge([]api.Tweet{{Text: "hi", UserName: "Someone"}}, nil)
	if items[0].Meta != "Someone" {
		t.Errorf("expected user name fallback, got %q", items[0].Meta)
	}
}

func TestFilterMatchesCaseInsensitive(t *testing.T) {
	it := Item{Meta: "Example.COM", Text: "short text"}

	tests := []struct {
		f    Filter
		want bool
	}{
		{Filter{Kind: FilterSite, Value: "example.com"}, true},
		{Filter{Kind: FilterSite, Value: "other.com"}, false},
		{Filter{Kind: FilterPlace, Value: "SHORT"}, true}, // matched against text too
		{Filter{Kind: FilterSite, Value: ""}, true},       // empty value matches everything
		{Filter{Kind: FilterAll, Value: "whatever"}, true},
		{Filter{}, true},
	}
	for _, tt := range tests {
		if got := tt.f.Matches(it); got != tt.want {
			t.Errorf("Filter%+v.Matches = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestLatestFiltersSortsAndCaps(t *testing.T) {
	at := func(h int) string { return time.Date(2026, 8, 21, h, 0, 0, 0, time.UTC).Format(time.RFC3339) }

	tweets := []api.Tweet{
		{Text: "mentions example.com here", Link: "l1", UserHandle: "a", CreatedAt: at(9)},
		{Text: "unrelated", Link: "l2", UserHandle: "b", CreatedAt: at(10)},
		{Text: "another example.com mention", Link: "l3", UserHandle: "c", CreatedAt: at(11)},
	}
	news := []api.News{
		{Link: "https://example.com/1", Source: "example.com", FetchedAt: at(12)},
		{Link: "https://other.org/2", Source: "other.org", FetchedAt: at(13)},
	}

	got := Latest(Merge(tweets, news), Filter{Kind: FilterSite, Value: "example.com"}, 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 matching items, got %d", len(got))
	}
	// Descending by timestamp: news@12, tweet@11, tweet@9.
	if got[0].Kind != KindNews {
		t.Errorf("expected news first, got %+v", got[0])
	}
	if got[1].Link != "l3" || got[2].Link != "l1" {
		t.Errorf("wrong order: %+v", got)
	}
}

func TestLatestUnparsableTimesSink(t *testing.T) {
	items := []Item{
		{Link: "zero"},
		{Link: "real", At: time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC)},
	}
	got := Latest(items, Filter{}, 10)
	if got[0].Link != "real" || got[1].Link != "zero" {
		t.Errorf("zero timestamps must sort last, got %+v", got)
	}
}

func TestLatestCap(t *testing.T) {
	var items []Item
	for i := 0; i < 25; i++ {
		items = append(items, Item{At: time.Date(2026, 8, 21, 0, i, 0, 0, time.UTC)})
	}
	if n := len(Latest(items, Filter{}, 10)); n != 10 {
		t.Errorf("expected cap at 10, got %d", n)
	}
	if n := len(Latest(items, Filter{}, 0)); n != DefaultSize {
		t.Errorf("expected default cap, got %d", n)
	}
}
