package entity

import "time"

// Presenter is one member of the rotation. ID is stable across reorders.
type Presenter struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Roster is the ordered rotation sequence
type Roster []Presenter

// IndexOf returns the position of the presenter with the given id, or -1
func (r Roster) IndexOf(id int) int {
	for i, p := range r {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// MaxID returns the highest id in the roster, never less than 0
func (r Roster) MaxID() int {
	maxID := 0
	for _, p := range r {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID
}

// Clone returns a copy that can be mutated without touching r
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

// Settings holds the user's rotation preferences
type Settings struct {
	PresentationDay int `json:"presentationDay"` // 0=Sunday ... 6=Saturday
}

// WeeklyPresenter is a presenter resolved for a given week
type WeeklyPresenter struct {
	Presenter Presenter `json:"presenter"`
	Week      int       `json:"week"`
	Date      time.Time `json:"date"`
}
