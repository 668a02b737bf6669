// Package config holds the process-level options that govern every typed
// pool — shard count and counter reporting — plus a debug-probe registry
// for introspecting live pools by name.
package config
