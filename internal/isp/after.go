package isp

import (
	"fmt"
	"io"
)

// Console lines printed by the workers.
const (
	ManagerWorking = "Manager is working."
	ManagerEating  = "Manager is eating."
	RobotWorking   = "Robot is working."
)

// Workable is the capability to work.
type Workable interface {
	Work()
}

// Eatable is the capability to eat.
type Eatable interface {
	Eat()
}

var (
	_ Workable = (*Manager)(nil)
	_ Eatable  = (*Manager)(nil)
	_ Workable = (*Robot)(nil)
)

// Manager works and eats.
type Manager struct {
	out io.Writer
}

// NewManager creates a manager printing to out.
func NewManager(out io.Writer) *Manager {
	return &Manager{out: out}
}

// Work prints ManagerWorking.
func (m *Manager) Work() { fmt.Fprintln(m.out, ManagerWorking) }

// Eat prints ManagerEating.
func (m *Manager) Eat() { fmt.Fprintln(m.out, ManagerEating) }

// Robot only works. It has no Eat method.
type Robot struct {
	out io.Writer
}

// NewRobot creates a robot printing to out.
func NewRobot(out io.Writer) *Robot {
	return &Robot{out: out}
}

// Work prints RobotWorking.
func (r *Robot) Work() { fmt.Fprintln(r.out, RobotWorking) }

// WorkShift asks every worker to work.
func WorkShift(workers ...Workable) {
	for _, w := range workers {
		w.Work()
	}
}

// Lunch feeds everyone who can eat.
func Lunch(eaters ...Eatable) {
	for _, e := range eaters {
		e.Eat()
	}
}
