// Package config loads application configuration from environment
// variables and an optional .env file.
//
// Defaults live on the config structs as `default` struct tags next to
// their `mapstructure` keys; LoadConfig registers every key with Viper via
// reflection so AutomaticEnv picks up overrides like LISS_ENDPOINT or
// STORAGE_BUCKET without explicit binding calls.
//
// Secrets (the LISS password in particular) are expected to arrive through
// the environment, optionally indirected via the *_env keys on
// liss.Config.
package config
