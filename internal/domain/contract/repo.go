package contract

import "github.com/diegoclair/presenter-rotation/internal/domain/entity"

// StatePersister mirrors the rotation state somewhere outside the controller.
// The only production implementation writes it back into the page URL.
type StatePersister interface {
	Persist(roster entity.Roster, settings entity.Settings) error
}
