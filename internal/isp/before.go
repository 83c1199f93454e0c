package isp

import (
	"fmt"
	"io"

	"github.com/bft-labs/solid/internal/domain"
)

// Worker bundles unrelated operations. Anti-example.
type Worker interface {
	Work() error
	Eat() error
}

var (
	_ Worker = (*LegacyManager)(nil)
	_ Worker = (*LegacyRobot)(nil)
)

// LegacyManager can do both.
type LegacyManager struct {
	out io.Writer
}

// NewLegacyManager creates a manager printing to out.
func NewLegacyManager(out io.Writer) *LegacyManager {
	return &LegacyManager{out: out}
}

// Work prints ManagerWorking.
func (m *LegacyManager) Work() error {
	_, err := fmt.Fprintln(m.out, ManagerWorking)
	return err
}

// Eat prints ManagerEating.
func (m *LegacyManager) Eat() error {
	_, err := fmt.Fprintln(m.out, ManagerEating)
	return err
}

// LegacyRobot is forced to expose Eat.
type LegacyRobot struct {
	out io.Writer
}

// NewLegacyRobot creates a robot printing to out.
func NewLegacyRobot(out io.Writer) *LegacyRobot {
	return &LegacyRobot{out: out}
}

// Work prints RobotWorking.
func (r *LegacyRobot) Work() error {
	_, err := fmt.Fprintln(r.out, RobotWorking)
	return err
}

// Eat always fails with domain.ErrNotImplemented.
func (r *LegacyRobot) Eat() error {
	return fmt.Errorf("robot eat: %w", domain.ErrNotImplemented)
}

// LunchBreak sends every worker to eat and stops at the first failure.
func LunchBreak(workers ...Worker) error {
	for _, w := range workers {
		if err := w.Eat(); err != nil {
			return err
		}
	}
	return nil
}
