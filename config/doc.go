// Package config loads engine.Config from a YAML/JSON/TOML file plus
// environment overrides, via viper — the teacher's corpus reaches for
// viper whenever a CLI needs layered file+env config (see
// niceyeti-tabular/tabular/reinforcement/learning.go's FromYaml) rather
// than hand-rolling flag parsing for every knob. The CLI in
// cmd/relaysim is the sole consumer; the simulation packages
// themselves never import this package, so engine.Config stays usable
// by a library caller that has nothing to do with files or env vars.
package config
