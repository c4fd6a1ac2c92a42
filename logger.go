// seehuhn.de/go/slideshow - draw basic 2D vector primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package slideshow

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops all records.  Enabled reports false, so callers
// skip formatting entirely.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(slog.New(discardHandler{}))
}

// SetLogger sets the logger used by renderers which were created without
// an explicit [Options.Logger].  By default nothing is logged.
// Passing nil restores the default.
//
// Redraws are logged at [slog.LevelDebug], rejected input at
// [slog.LevelWarn].
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	defaultLogger.Store(l)
}

// Logger returns the logger set by [SetLogger].
func Logger() *slog.Logger {
	return defaultLogger.Load()
}
