// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, an optional config.yaml).
// It provides type-safe access to the settings needed by the HTTP server,
// the MongoDB client, token issuance and the payment provider.
package config
