// Package core runs an interpreter as a ticking component on an akita
// simulation engine, executing one program line per cycle.
package core

import (
	"context"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/qirsim/interp"
	"github.com/sarchlab/qirsim/qir"
)

// Core executes one mapped program.
type Core struct {
	*sim.TickingComponent

	ctx   context.Context
	it    *interp.Interpreter
	err   error
	ticks int
}

// MapProgram sets the interpreter that the core needs to run and schedules
// the first tick.
func (c *Core) MapProgram(it *interp.Interpreter) {
	c.it = it
	c.err = nil
	c.ticks = 0

	c.TickNow()
}

// Tick runs the program for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.it == nil || c.err != nil || c.it.Done() {
		return false
	}

	if c.ctx != nil {
		if err := c.ctx.Err(); err != nil {
			c.err = err
			return false
		}
	}

	if err := c.it.Budget(); err != nil {
		c.err = err
		return false
	}

	pc := c.it.PC()
	if err := c.it.Step(); err != nil {
		c.err = err
		qir.Trace("Fault",
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Core", c.Name(),
			"PC", pc,
			"Error", err,
		)
		return false
	}

	c.ticks++
	qir.Trace("Step",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"Core", c.Name(),
		"PC", pc,
		"Next", c.it.PC(),
	)

	return !c.it.Done()
}

// Run drives the engine until the mapped program stops and returns the error
// that stopped it, if any.
func (c *Core) Run(ctx context.Context) error {
	c.ctx = ctx
	defer func() { c.ctx = nil }()

	if err := c.Engine.Run(); err != nil {
		return err
	}

	LogState(c)

	return c.err
}

// Err returns the error that stopped the program.
func (c *Core) Err() error {
	return c.err
}

// Ticks returns how many cycles executed a line.
func (c *Core) Ticks() int {
	return c.ticks
}

// Done reports whether the mapped program ran to its end.
func (c *Core) Done() bool {
	return c.it != nil && c.it.Done()
}
