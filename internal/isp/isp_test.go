package isp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bft-labs/solid/internal/domain"
)

func TestRobot_IsNotEatable(t *testing.T) {
	var robot any = NewRobot(&bytes.Buffer{})

	_, workable := robot.(Workable)
	_, eatable := robot.(Eatable)

	assert.True(t, workable)
	assert.False(t, eatable, "Robot must not expose Eat")
}

func TestManager_HasBothCapabilities(t *testing.T) {
	var manager any = NewManager(&bytes.Buffer{})

	assert.Implements(t, (*Workable)(nil), manager)
	assert.Implements(t, (*Eatable)(nil), manager)
}

func TestWorkShiftAndLunch(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(&buf)
	r := NewRobot(&buf)

	WorkShift(m, r)
	Lunch(m)

	assert.Equal(t, ManagerWorking+"\n"+RobotWorking+"\n"+ManagerEating+"\n", buf.String())
}

func TestLegacyRobot_ForcedToFail(t *testing.T) {
	var buf bytes.Buffer

	assert.NoError(t, NewLegacyRobot(&buf).Work())
	assert.ErrorIs(t, NewLegacyRobot(&buf).Eat(), domain.ErrNotImplemented)
}

func TestLunchBreak(t *testing.T) {
	var buf bytes.Buffer

	err := LunchBreak(NewLegacyManager(&buf), NewLegacyRobot(&buf))

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Equal(t, ManagerEating+"\n", buf.String())
}
