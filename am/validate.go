package am

import "github.com/teranos/i18ntypes/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Locales.Dir == "" {
		return errors.NewInvalidRequestError("locales.dir cannot be empty")
	}

	switch c.Locales.Order {
	case OrderSorted, OrderListing:
	default:
		return errors.NewInvalidRequestError("locales.order must be %q or %q, got %q",
			OrderSorted, OrderListing, c.Locales.Order)
	}

	if c.Output.File == "" {
		return errors.NewInvalidRequestError("output.file cannot be empty")
	}

	if len(c.Output.Modules) == 0 {
		return errors.NewInvalidRequestError("output.modules must name at least one module")
	}
	for _, m := range c.Output.Modules {
		if m == "" {
			return errors.NewInvalidRequestError("output.modules cannot contain an empty module name")
		}
	}

	// 0 = no debounce, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.NewInvalidRequestError("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
