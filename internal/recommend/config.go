package recommend

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds the tunables of the assembler.
type Config struct {
	// FixedItems are always carried and always listed first.
	FixedItems []string `koanf:"fixed_items" json:"fixed_items"`

	// Gate is the minimum score for an extra to be admitted on its own merit.
	Gate int `koanf:"gate" json:"gate"`

	// TopN caps the primary extras.
	TopN int `koanf:"top_n" json:"top_n"`

	// MaxExtras caps primary plus secondary extras.
	MaxExtras int `koanf:"max_extras" json:"max_extras"`

	// Lookahead is how many upcoming events are fetched for selection.
	Lookahead int `koanf:"lookahead" json:"lookahead"`
}

func DefaultConfig() Config {
	return Config{
		FixedItems: []string{"phone", "wallet", "key"},
		Gate:       7,
		TopN:       3,
		MaxExtras:  5,
		Lookahead:  2,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Gate < 0 {
		errs = append(errs, fmt.Errorf("gate must be >= 0, got %d", c.Gate))
	}
	if c.TopN < 0 {
		errs = append(errs, fmt.Errorf("top_n must be >= 0, got %d", c.TopN))
	}
	if c.MaxExtras < c.TopN {
		errs = append(errs, fmt.Errorf("max_extras (%d) must be >= top_n (%d)", c.MaxExtras, c.TopN))
	}
	if c.Lookahead < 2 {
		errs = append(errs, fmt.Errorf("lookahead must be >= 2, got %d", c.Lookahead))
	}
	for i, it := range c.FixedItems {
		if strings.TrimSpace(it) == "" {
			errs = append(errs, fmt.Errorf("fixed_items[%d] is blank", i))
		}
	}
	return errors.Join(errs...)
}
