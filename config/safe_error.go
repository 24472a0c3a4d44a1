package config

// SafeErrorMessage returns the real error detail in debug mode and the
// fallback elsewhere, so internals never leak to clients in production.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "debug" {
		return fallback + ": " + err.Error()
	}
	return fallback
}
