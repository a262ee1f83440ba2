package model

// --- SYSTEM CONFIG ---
// EnvConfig holds the server settings, read once at startup from the
// "config" environment variable with defaults that cover a local run.
// @Description Server configuration
type EnvConfig struct {
	Port              string `json:"port"`
	Environment       string `json:"environment"`
	FrontendUrl       string `json:"frontendUrl"`
	YahooBaseUrl      string `json:"yahooBaseUrl"`
	RequestTimeoutSec int    `json:"requestTimeoutSec"`
	RateLimiter       bool   `json:"rateLimiter"`
	DebugMode         bool   `json:"debug"`
}
