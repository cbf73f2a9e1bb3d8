package cells

import (
	"context"
	"fmt"
)

// Command pairs an action with a reactive can-execute flag, recomputed by an
// effect whenever what the predicate read changes.
type Command struct {
	rt        *Runtime
	owner     OwnerKey
	last      bool
	execute   func(ctx context.Context) error
	observers Observers[bool]
	stop      func()
}

func NewCommand(rt *Runtime, canExecute func() bool, execute func(ctx context.Context) error) *Command {
	c := &Command{
		rt:      rt,
		owner:   rt.NewOwner(),
		execute: execute,
	}
	c.stop = rt.WatchEffect(func() {
		current := canExecute()
		if current == c.last {
			return
		}
		c.last = current
		c.rt.trigger(c.owner, propCanExecute)
		c.observers.Notify(c.rt, current)
	})
	return c
}

// CanExecute returns the cached flag and tracks it.
func (c *Command) CanExecute() bool {
	c.rt.track(c.owner, propCanExecute)
	return c.last
}

// Execute runs the action outside any tracking scope. It returns
// ErrCannotExecute without running when the flag is false.
func (c *Command) Execute(ctx context.Context) (err error) {
	if !c.last {
		return fmt.Errorf("%w: %s", ErrCannotExecute, c.owner)
	}
	c.rt.Gap(func() {
		err = c.execute(ctx)
	})
	return err
}

func (c *Command) OnCanExecuteChanged(fn func(bool)) (cancel func()) {
	return c.observers.Add(fn)
}

func (c *Command) Owner() OwnerKey {
	return c.owner
}

func (c *Command) Release() {
	c.stop()
	c.rt.Release(c.owner)
}
