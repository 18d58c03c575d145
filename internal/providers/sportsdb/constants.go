package sportsdb

import "time"

const (
	providerName = "sportsdb"

	defaultBaseURL     = "https://www.thesportsdb.com/api/v1/json"
	defaultHTTPTimeout = 10 * time.Second
	// Free-tier key published in TheSportsDB docs.
	defaultAPIKey = "3"
)
