package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marllon-Freitas/oxente/internal/environment"
	"github.com/Marllon-Freitas/oxente/internal/token"
)

func nameTok(lexeme string) token.Token {
	return token.New(token.Identifier, lexeme, nil, 1)
}

func TestDefineAndGet(t *testing.T) {
	a := environment.NewArena()
	a.Define(a.Global, "x", 1.0)

	val, err := a.Get(a.Global, nameTok("x"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, val)
}

func TestChildShadowsWithoutMutatingParent(t *testing.T) {
	a := environment.NewArena()
	a.Define(a.Global, "a", "hi")

	child := a.New(a.Global)
	a.Define(child, "a", "bye")

	childVal, err := a.Get(child, nameTok("a"))
	require.NoError(t, err)
	assert.Equal(t, "bye", childVal)

	parentVal, err := a.Get(a.Global, nameTok("a"))
	require.NoError(t, err)
	assert.Equal(t, "hi", parentVal)
}

func TestAssignWalksOutward(t *testing.T) {
	a := environment.NewArena()
	a.Define(a.Global, "x", 1.0)
	child := a.New(a.Global)

	err := a.Assign(child, nameTok("x"), 2.0)
	require.NoError(t, err)

	val, err := a.Get(a.Global, nameTok("x"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, val)
}

func TestGetUndefinedIsRuntimeError(t *testing.T) {
	a := environment.NewArena()
	_, err := a.Get(a.Global, nameTok("missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}

func TestAssignUndefinedIsRuntimeError(t *testing.T) {
	a := environment.NewArena()
	err := a.Assign(a.Global, nameTok("missing"), 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}
