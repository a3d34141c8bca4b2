package domain

import "github.com/diegoclair/presenter-rotation/internal/domain/entity"

// DefaultRoster is the rotation shown when the URL carries no presenters
func DefaultRoster() entity.Roster {
	return entity.Roster{
		{ID: 1, Name: "Alice Johnson"},
		{ID: 2, Name: "Bob Smith"},
		{ID: 3, Name: "Carol Williams"},
		{ID: 4, Name: "David Brown"},
		{ID: 5, Name: "Eva Martinez"},
	}
}
