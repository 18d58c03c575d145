package config

const (
	envSportsDBBaseURL = "SPORTSDB_BASE_URL"
	envSportsDBAPIKey  = "SPORTSDB_API_KEY"

	defaultSportsDBBaseURL = "https://www.thesportsdb.com/api/v1/json"
)

// SportsDBConfig controls how we talk to TheSportsDB API.
type SportsDBConfig struct {
	BaseURL string
	APIKey  string
}

func loadSportsDB() SportsDBConfig {
	return SportsDBConfig{
		BaseURL: envOrDefault(envSportsDBBaseURL, defaultSportsDBBaseURL),
		APIKey:  envOrDefault(envSportsDBAPIKey, ""),
	}
}
