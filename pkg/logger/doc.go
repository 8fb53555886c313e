// Package logger builds configured log/slog loggers and provides typed
// attribute helpers for the fields this codebase logs most (errors, channel
// names, provider-assigned delivery IDs).
//
// New returns a ready *slog.Logger; functional options select level, format
// (text or JSON), output writer, and static attributes attached to every
// record. All other packages accept a *slog.Logger rather than constructing
// one, so applications control the sink in one place.
package logger
