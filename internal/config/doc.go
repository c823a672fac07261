// Package config provides configuration loading, merging, and validation
// facilities for the device event logger.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Defaults
//
// The entry point is [GetStructuredConfig]. Loading fails when USERNAME or
// PASSWORD is not supplied by any source.
package config
