package lsp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/solid/internal/domain"
)

func TestFlyable_NeverFails(t *testing.T) {
	var buf bytes.Buffer
	flyers := []Flyable{NewBird(&buf), NewPenguin(&buf)}

	for _, f := range flyers {
		assert.NotPanics(t, f.Fly)
	}

	assert.Equal(t, "Flying!\n"+PenguinMessage+"\n", buf.String())
}

func TestFlyAll(t *testing.T) {
	var buf bytes.Buffer

	FlyAll(NewPenguin(&buf), NewBird(&buf))

	assert.Equal(t, PenguinMessage+"\nFlying!\n", buf.String())
}

func TestLegacyPenguin_BreaksSubstitution(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewLegacyBird(&buf).Fly())

	err := NewLegacyPenguin(&buf).Fly()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Equal(t, "Flying!\n", buf.String())
}

func TestLaunchAll_StopsAtPenguin(t *testing.T) {
	var buf bytes.Buffer

	err := LaunchAll(NewLegacyBird(&buf), NewLegacyPenguin(&buf), NewLegacyBird(&buf))

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Equal(t, "Flying!\n", buf.String())
}
