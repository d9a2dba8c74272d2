package api

// Tweet is one stored tweet as returned by /tweets. Field names follow
// the API's column names; link doubles as the unique key for rendering.
type Tweet struct {
	ID         string `json:"tweet_id"`
	Query      string `json:"query"`
	UserHandle string `json:"user_handle"`
	UserName   string `json:"user_name"`
	Text       string `json:"text"`
	Link       string `json:"link"`
	CreatedAt  string `json:"tweet_created_at"`
	FetchedAt  string `json:"fetched_at"`
}

// News is one stored news item as returned by /news.
type News struct {
	Link      string `json:"link"`
	Source    string `json:"source"`
	CreatedAt string `json:"news_created_at"`
	FetchedAt string `json:"fetched_at"`
}

// DailyStat is one row of /stats/daily: tweet volume per calendar day,
// most recent day first.
type DailyStat struct {
	Day    string `json:"day"`
	Tweets int    `json:"tweets"`
}

// QueryStat is one row of /stats/top-queries, pre-sorted by total.
type QueryStat struct {
	Query string `json:"query"`
	Total int    `json:"total"`
}
