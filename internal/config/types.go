package config

// Config holds all tiascan configuration.
type Config struct {
	Network        string `json:"network"         yaml:"network"`         // "mainnet" | "mocha" | "arabica"
	APIURL         string `json:"api_url"         yaml:"api_url"`         // overrides the network table when set
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
	PageLimit      int    `json:"page_limit"      yaml:"page_limit"`
	WatchInterval  int    `json:"watch_interval"  yaml:"watch_interval"`  // seconds
	LogLevel       string `json:"log_level"       yaml:"log_level"`
	PriceCurrency  string `json:"price_currency"  yaml:"price_currency"`

	// internal: config dir path used for Save()
	configDir string
}
