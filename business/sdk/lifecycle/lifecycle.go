// Package lifecycle validates status transitions for domain entities using a
// state machine. Domain packages declare their allowed transitions and ask
// the machine whether a change from the current status to a requested one is
// legal.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	loopfsm "github.com/looplab/fsm"
)

// ErrInvalidTransition is returned when the requested status change is not
// declared by the domain.
var ErrInvalidTransition = errors.New("invalid status transition")

// Transition declares one allowed status change.
type Transition struct {
	Src string
	Dst string
}

// Machine validates status changes against a set of declared transitions.
type Machine struct {
	events []loopfsm.EventDesc
}

// New constructs a machine from the declared transitions. Transitions with
// the same destination are consolidated into a single event with multiple
// source states.
func New(transitions []Transition) *Machine {
	grouped := make(map[string][]string)
	order := make([]string, 0, len(transitions))

	for _, t := range transitions {
		if _, exists := grouped[t.Dst]; !exists {
			order = append(order, t.Dst)
		}
		grouped[t.Dst] = append(grouped[t.Dst], t.Src)
	}

	events := make([]loopfsm.EventDesc, 0, len(order))
	for _, dst := range order {
		events = append(events, loopfsm.EventDesc{
			Name: dst,
			Src:  grouped[dst],
			Dst:  dst,
		})
	}

	return &Machine{
		events: events,
	}
}

// Check validates moving from the current status to the requested one. The
// underlying fsm is stateful so a short-lived instance is created per call.
func (m *Machine) Check(ctx context.Context, current string, requested string) error {
	if current == requested {
		return nil
	}

	machine := loopfsm.NewFSM(current, m.events, nil)

	if err := machine.Event(ctx, requested); err != nil {
		var invalidEvent loopfsm.InvalidEventError
		var unknownEvent loopfsm.UnknownEventError
		if errors.As(err, &invalidEvent) || errors.As(err, &unknownEvent) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
		}

		return fmt.Errorf("fsm: %w", err)
	}

	return nil
}
