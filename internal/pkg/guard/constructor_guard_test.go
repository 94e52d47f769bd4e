package guard_test

import (
	"errors"
	"sync"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStepNotConstructed = errors.New("step must be created via newStep")

type step struct {
	name  string
	guard guard.ConstructorGuard
}

func newStep(name string) (step, error) {
	if name == "" {
		return step{}, errors.New("name is required")
	}
	return step{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (s step) Validate() error {
	return s.guard.Validate(errStepNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errStepNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errStepNotConstructed)

		require.ErrorIs(t, err, errStepNotConstructed)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	t.Run("constructed_value_is_valid", func(t *testing.T) {
		s, err := newStep("Review order details")
		require.NoError(t, err)

		require.NoError(t, s.Validate())
	})

	t.Run("struct_literal_is_invalid", func(t *testing.T) {
		s := step{name: "Review order details"}

		require.ErrorIs(t, s.Validate(), errStepNotConstructed)
	})

	t.Run("copies_keep_construction_state", func(t *testing.T) {
		s, err := newStep("Prepare materials")
		require.NoError(t, err)
		copied := s

		require.NoError(t, copied.Validate())
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(errStepNotConstructed))
		}()
	}
	wg.Wait()
}
