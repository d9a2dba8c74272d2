package tui

import (
	"github.com/kerimyeniyildiz/lastmonitor/internal/api"
)

// One message per data section; each section fails on its own.

type tweetsMsg struct {
	tweets []api.Tweet
	err    error
}

type newsMsg struct {
	news []api.News
	err  error
}

type dailyMsg struct {
	stats []api.DailyStat
	err   error
}

type topQueriesMsg struct {
	stats []api.QueryStat
	err   error
}

type updateCheckMsg struct {
	version string
}

type openLinkMsg struct {
	err error
}
