// Package env holds the few raw environment lookups that happen before the
// typed config is loaded, such as picking the log output format.
package env

import "os"

// Get reads an environment variable, falling back when it is unset or blank.
func Get(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
