// Package config provides loading, merging, and validation of the userbot's
// runtime settings.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A .env file in the working directory
//  3. Environment variables
//  4. Command-line flags
//  5. JSON settings file
//
// The operator's credentials and conversation selection are NOT part of
// these settings; they live in the configuration record managed by the store
// package. The main entry point is [GetStructuredConfig].
package config
