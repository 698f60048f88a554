package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/solgen/kind/common"
	"github.com/syssam/solgen/kind/erc20"
)

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Subset", "some", "unsupported subset")

		assert.Contains(t, err.Error(), "solgen: config error")
		assert.Contains(t, err.Error(), "Subset")
		assert.Contains(t, err.Error(), "some")
		assert.Contains(t, err.Error(), "unsupported subset")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Target", nil, "cannot be empty")

		assert.Equal(t, `solgen: config error for "Target": cannot be empty`, err.Error())
	})

	t.Run("Is matches ErrInvalidConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "")
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.False(t, errors.Is(err, ErrGenerationFailed))
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		assert.True(t, IsConfigError(NewConfigError("Workers", 0, "")))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	o := ERC20{erc20.Options{Name: common.Ptr("Coin"), Mintable: common.Ptr(true)}}

	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewGenerationError(PhaseBuild, o, "abc", cause)

		assert.Equal(t, KindERC20, err.Kind)
		assert.Contains(t, err.Error(), "solgen: generation error in phase build for ERC20 (id: abc): underlying error")
		assert.Contains(t, err.Error(), "kind: ERC20")
		assert.Contains(t, err.Error(), "mintable: true")
		assert.Contains(t, err.Error(), "name: Coin")
	})

	t.Run("Error message without options", func(t *testing.T) {
		err := NewGenerationError(PhaseWrite, nil, "", errors.New("disk full"))
		assert.Equal(t, "solgen: generation error in phase write: disk full", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewGenerationError(PhasePrint, o, "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
	})

	t.Run("IsGenerationError helper", func(t *testing.T) {
		assert.True(t, IsGenerationError(NewGenerationError(PhaseBuild, nil, "", nil)))
		assert.False(t, IsGenerationError(errors.New("other")))
	})
}
