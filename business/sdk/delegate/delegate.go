// Package delegate provides the ability to make function calls between
// different domain packages when an import is not possible.
package delegate

import (
	"context"
	"fmt"

	"github.com/hudsor01/tenantflow/foundation/logger"
)

// These types are just for documentation so we know what keys go
// where in the map.
type (
	domainType = string
	action     = string
)

// Delegate manages the set of functions to be called by domain packages when
// an event happens.
type Delegate struct {
	log   *logger.Logger
	funcs map[domainType]map[action][]Func
}

// New constructs a delegate for indirect api access.
func New(log *logger.Logger) *Delegate {
	return &Delegate{
		log:   log,
		funcs: make(map[domainType]map[action][]Func),
	}
}

// Register adds a function to be called for the specified domain and action.
func (d *Delegate) Register(domainType string, action string, fn Func) {
	aMap, ok := d.funcs[domainType]
	if !ok {
		aMap = make(map[string][]Func)
		d.funcs[domainType] = aMap
	}

	aMap[action] = append(aMap[action], fn)
}

// Call executes all functions registered for the specified event. These
// functions are executed synchronously on the goroutine making this call.
func (d *Delegate) Call(ctx context.Context, data Data) error {
	d.log.Info(ctx, "delegate call", "status", "started", "domain", data.Domain, "action", data.Action)
	defer d.log.Info(ctx, "delegate call", "status", "completed")

	if dMap, ok := d.funcs[data.Domain]; ok {
		if funcs, ok := dMap[data.Action]; ok {
			for _, fn := range funcs {
				d.log.Info(ctx, "delegate call", "status", "sending")

				if err := fn(ctx, data); err != nil {
					d.log.Error(ctx, "delegate call", "err", err)
				}
			}
		}
	}

	return nil
}

// =============================================================================

// Func represents a function that is registered and called by the system.
type Func func(context.Context, Data) error

// Data represents an event between domains.
type Data struct {
	Domain    string
	Action    string
	RawParams []byte
}

// String implements the Stringer interface.
func (d Data) String() string {
	return fmt.Sprintf("Event{Domain:%v, Action:%v, RawParams:%v}", d.Domain, d.Action, string(d.RawParams))
}
