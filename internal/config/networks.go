package config

import "time"

// Celenium API endpoints per Celestia network.
var networkURLs = map[string]string{
	"mainnet": "https://api-mainnet.celenium.io/v1",
	"mocha":   "https://api-mocha.celenium.io/v1",
	"arabica": "https://api-arabica.celenium.io/v1",
}

// Networks returns the known network names in display order.
func Networks() []string {
	return []string{"mainnet", "mocha", "arabica"}
}

// Bounds applied by Validate.
const (
	MaxPageLimit     = 100
	MinWatchInterval = 2 * time.Second
)
