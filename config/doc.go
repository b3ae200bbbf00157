// Package config resolves the credentials and settings used by oaikit.
//
// Credentials come from, in order: an explicit Configuration passed to the
// client, the process default (see Default and SetDefault), which itself is
// read from the environment (OPENAI_API_KEY, OPENAI_ORGANIZATION, or a .env
// file in the working directory) and then from ~/.openai/auth.json.
//
// LoadFile reads the optional settings file used by the oaikit command in
// YAML, TOML or JSON.
package config
