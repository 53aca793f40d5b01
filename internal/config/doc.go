// Package config loads and merges the go-fit-keeper client configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (env, then flags, then JSON; later
// non-zero values win) by a small builder around dario.cat/mergo. The merged
// [StructuredConfig] is projected into a [ClientConfig] view that carries only
// the fields the client runtime needs, and validated before use.
package config
