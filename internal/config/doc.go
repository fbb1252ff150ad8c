// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to settings for the API server and the study client while keeping
// configuration details separate from business logic.
package config
