package service

import (
	"time"

	"github.com/diegoclair/presenter-rotation/internal/domain/contract"
	"github.com/jonboulle/clockwork"
)

type Instance struct {
	Scheduler *scheduler
}

// NewInstance wires the services. A zero epoch keeps week numbers relative to
// January 1st of the current year.
func NewInstance(clock clockwork.Clock, epoch time.Time) *Instance {
	return &Instance{
		Scheduler: newScheduler(clock, epoch),
	}
}

// NewController returns a controller that reports every state change to persister
func (i *Instance) NewController(persister contract.StatePersister) contract.RotationController {
	return newRotationController(persister)
}
