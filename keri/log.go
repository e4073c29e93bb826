package keri

import "github.com/echa/log"

// logger is the package-wide logger. It is disabled by default; callers
// that want visibility into framing and derivation call UseLogger.
var logger log.Logger = log.Log

func init() {
	DisableLog()
}

// DisableLog disables all package log output. This is the default.
func DisableLog() {
	logger = log.Disabled
}

// UseLogger directs package log output to l.
func UseLogger(l log.Logger) {
	logger = l
}
