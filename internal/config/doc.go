// Package config provides configuration loading, merging, and validation for
// the go-pro-network client.
//
// Configuration is assembled from multiple sources in the following order,
// later sources overriding non-zero fields of earlier ones:
//  1. Environment variables
//  2. JSON config file (path from CONFIG or -c)
//  3. Command-line flags
//
// Defaults are applied last to fields that are still zero. The entry point is
// [GetClientConfig].
package config
