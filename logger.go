// Ambient structured logging for Set[E]. A Set never logs on its hot
// path (Insert/Erase/SetWeight/Sample); it logs only at construction,
// on Clear, and when it detects mutation-during-iteration. See
// SPEC_FULL.md's AMBIENT STACK section.
package samplableset

import "github.com/rs/zerolog"

// logger is the narrow seam this package actually needs from zerolog.
// Kept as an interface (rather than a bare zerolog.Logger field) so
// WithLogger accepts anything satisfying it, including a zerolog.Logger
// value via the adapter below.
type logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
}

// ZerologAdapter wraps a zerolog.Logger so it satisfies logger. This is
// the adapter WithLogger expects; construct it with
// ZerologAdapter{Logger: l}.
type ZerologAdapter struct {
	Logger zerolog.Logger
}

func (a ZerologAdapter) Debug() *zerolog.Event { return a.Logger.Debug() }
func (a ZerologAdapter) Info() *zerolog.Event  { return a.Logger.Info() }
func (a ZerologAdapter) Warn() *zerolog.Event  { return a.Logger.Warn() }

// nopLogger is the zero-cost default: every call returns a disabled
// zerolog.Event, so formatting and field-building never execute.
type nopLogger struct{}

func (nopLogger) Debug() *zerolog.Event { return nil }
func (nopLogger) Info() *zerolog.Event  { return nil }
func (nopLogger) Warn() *zerolog.Event  { return nil }
