// Package livefeed merges tweets and news into the single
// chronological list behind the live view.
package livefeed

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
	"github.com/kerimyeniyildiz/lastmonitor/internal/derive"
)

// DefaultSize is how many items the live view shows.
const DefaultSize = 10

// Kind tags the origin of a feed item.
type Kind string

const (
	KindTweet Kind = "tweet"
	KindNews  Kind = "news"
)

// Item is one normalized entry of the merged feed. Meta is the
// secondary label: the author handle for tweets, the source label for
// news.
type Item struct {
	Kind Kind
	Text string
	Link string
	At   time.Time
	Meta string
}

// FilterKind selects which category the live filter matches on. All
// kinds match the same fields; the kind exists so the UI can present
// site, place and person shortcuts separately.
type FilterKind string

const (
	FilterAll    FilterKind = "all"
	FilterSite   FilterKind = "site"
	FilterPlace  FilterKind = "place"
	FilterPerson FilterKind = "person"
)

// Kinds returns the filter kinds in display order.
func Kinds() []FilterKind {
	return []FilterKind{FilterAll, FilterSite, FilterPlace, FilterPerson}
}

// Filter is the live-view category filter. An empty Value matches
// everything, as does FilterAll.
type Filter struct {
	Kind  FilterKind
	Value string
}

// Matches reports whether the item's meta label or text contains the
// filter value, case-insensitively.
func (f Filter) Matches(it Item) bool {
	if f.Kind == FilterAll || f.Kind == "" || f.Value == "" {
		return true
	}
	needle := strings.ToLower(f.Value)
	return strings.Contains(strings.ToLower(it.Meta), needle) ||
		strings.Contains(strings.ToLower(it.Text), needle)
}

// Label is the status-bar description of the filter.
func (f Filter) Label() string {
	if f.Kind == FilterAll || f.Kind == "" || f.Value == "" {
		return "All"
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Value)
}

// Merge normalizes both collections into feed items. Order is not
// significant here; Latest sorts.
func Merge(tweets []api.Tweet, news []api.News) []Item {
	items := make([]Item, 0, len(tweets)+len(news))
	for _, t := range tweets {
		items = append(items, Item{
			Kind: KindTweet,
			Text: t.Text,
			Link: t.Link,
			At:   derive.TweetTime(t),
			Meta: tweetMeta(t),
		})
	}
	for _, n := range news {
		items = append(items, Item{
			Kind: KindNews,
			Text: n.Link,
			Link: n.Link,
			At:   derive.NewsTime(n),
			Meta: n.Source,
		})
	}
	return items
}

// Latest applies the filter, sorts descending by timestamp (zero
// times sink to the bottom) and caps the result at n.
func Latest(items []Item, f Filter, n int) []Item {
	if n <= 0 {
		n = DefaultSize
	}

	var kept []Item
	for _, it := range items {
		if f.Matches(it) {
			kept = append(kept, it)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].At.After(kept[j].At)
	})

	if len(kept) > n {
		kept = kept[:n]
	}
	return kept
}

func tweetMeta(t api.Tweet) string {
	if t.UserHandle != "" {
		return "@" + t.UserHandle
	}
	return t.UserName
}
