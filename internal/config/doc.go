// Package config loads Seekr's YAML configuration. Settings merge with CLI
// flags at the command layer with the precedence CLI > repo-local > global.
package config
