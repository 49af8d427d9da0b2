package core

import (
	"log/slog"
)

// LogState writes a debug checkpoint of the interpreter state of a core.
func LogState(c *Core) {
	if c.it == nil {
		return
	}

	slog.Debug("StateCheckpoint",
		"Core", c.Name(),
		"PC", c.it.PC(),
		"Steps", c.it.Steps(),
		"Ticks", c.ticks,
		"Vars", c.it.Vars(),
		"Error", c.err,
	)
}
