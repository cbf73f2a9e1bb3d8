package cells_test

import (
	"context"
	"errors"
	"testing"

	"github.com/delaneyj/dashcells/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandCanExecuteFollowsPredicate(t *testing.T) {
	rt := cells.NewRuntime()
	text := cells.NewCell(rt, "Hello")

	executed := 0
	cmd := cells.NewCommand(rt,
		func() bool { return text.Get() != "" },
		func(context.Context) error {
			executed++
			return nil
		},
	)
	var flips []bool
	cmd.OnCanExecuteChanged(func(v bool) {
		flips = append(flips, v)
	})
	assert.True(t, cmd.CanExecute())

	text.Set("World")
	assert.Empty(t, flips)

	text.Set("")
	assert.False(t, cmd.CanExecute())
	assert.Equal(t, []bool{false}, flips)

	err := cmd.Execute(context.Background())
	assert.True(t, errors.Is(err, cells.ErrCannotExecute))
	assert.Equal(t, 0, executed)

	text.Set("again")
	require.NoError(t, cmd.Execute(context.Background()))
	assert.Equal(t, 1, executed)
	assert.Equal(t, []bool{false, true}, flips)
}

func TestCommandExecuteIsUntracked(t *testing.T) {
	rt := cells.NewRuntime()
	other := cells.NewCell(rt, 0)

	cmd := cells.NewCommand(rt,
		func() bool { return true },
		func(context.Context) error {
			assert.False(t, rt.Active())
			other.Get()
			return nil
		},
	)

	runs := 0
	rt.WatchEffect(func() {
		runs++
		if cmd.CanExecute() && runs == 1 {
			require.NoError(t, cmd.Execute(context.Background()))
		}
	})
	other.Set(1)
	assert.Equal(t, 1, runs)
}

func TestCommandReturnsHandlerError(t *testing.T) {
	rt := cells.NewRuntime()
	boom := errors.New("boom")
	cmd := cells.NewCommand(rt,
		func() bool { return true },
		func(context.Context) error { return boom },
	)
	assert.ErrorIs(t, cmd.Execute(context.Background()), boom)

	cmd.Release()
	assert.False(t, rt.Alive(cmd.Owner()))
}
