package statsapi

import "time"

const (
	providerName       = "statsapi"
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	sportIDMLB         = "1"
	scheduleHydrate    = "probablePitcher,venue"
	// Boxscores and people are cached for the life of a single lookup.
	cacheTTL        = 30 * time.Second
	maxErrorBodyLen = 512
	// Upper bound for a shared boxscore or person fetch once detached from its caller.
	sharedFetchTimeout = 15 * time.Second
)
