package types

type Config struct {
	Credentials
	Locale         string         `json:"locale"`
	Timezone       string         `json:"timezone"`
	FactOptions    FactOptions    `json:"fact_options"`
	RateOptions    RateOptions    `json:"rate_options"`
	HistoryOptions HistoryOptions `json:"history_options"`
}

type Credentials struct {
	Twilio
}

type Twilio struct {
	AccountSid string `json:"twilio-account-sid"`
	AuthToken  string `json:"twilio-auth-token"`
	FromNumber string `json:"twilio-from-number"`
	ToNumber   string `json:"twilio-to-number"`
}

type FactOptions struct {
	Enabled  bool   `json:"enabled"`
	Language string `json:"language"`
}

type RateOptions struct {
	Enabled bool     `json:"enabled"`
	Base    string   `json:"base"`
	Quotes  []string `json:"quotes"`
}

type HistoryOptions struct {
	Enabled bool   `json:"enabled"`
	Region  string `json:"region"`
	Table   string `json:"table"`
}
