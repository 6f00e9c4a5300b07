// Package logging holds the zerolog helpers shared by mindflow components.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component derives a logger from the global logger tagged with the
// component name under the "cmp" key and the context hook attached.
func Component(name string) zerolog.Logger {
	return Scoped(log.Logger, name)
}

// Scoped tags an explicit logger the same way Component tags the global one.
func Scoped(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
