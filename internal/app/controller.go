package app

import (
	"context"
	"time"

	"github.com/example/casebook/internal/core/effects"
	"github.com/example/casebook/internal/core/session"
)

// Controller drives the session state machine synchronously.
// Effects run in FIFO order and their completion messages are fed back
// until the queue drains, so Dispatch returns a settled state.
type Controller struct {
	runner EffectRunner
	state  session.State
	now    func() time.Time
}

// NewController creates a Controller in the initial (loading) state.
func NewController(runner EffectRunner) *Controller {
	return &Controller{
		runner: runner,
		now:    time.Now,
	}
}

// Start runs the initial fetch of both collections.
func (c *Controller) Start(ctx context.Context) session.State {
	state, effs := session.Init()
	c.state = state
	c.drain(ctx, effs)
	return c.state
}

// Dispatch applies msgs in order and returns the settled state.
func (c *Controller) Dispatch(ctx context.Context, msgs ...session.Msg) session.State {
	for _, msg := range msgs {
		var effs []effects.Effect
		c.state, effs = session.Update(c.state, msg, c.now())
		c.drain(ctx, effs)
	}
	return c.state
}

// State returns the current state.
func (c *Controller) State() session.State {
	return c.state
}

func (c *Controller) drain(ctx context.Context, effs []effects.Effect) {
	queue := append([]effects.Effect(nil), effs...)
	for len(queue) > 0 {
		eff := queue[0]
		queue = queue[1:]
		for _, msg := range c.runner.Run(ctx, eff) {
			var next []effects.Effect
			c.state, next = session.Update(c.state, msg, c.now())
			queue = append(queue, next...)
		}
	}
}
