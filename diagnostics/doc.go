// Package diagnostics renders a pool's counter snapshot as a human
// readable report, mirroring the destructor-time counter dump of the
// system this library's recycling design is modeled on. Collection of
// the counters themselves lives in internal/core; this package only
// presents them, and only when config.EnableCounters is on.
package diagnostics
