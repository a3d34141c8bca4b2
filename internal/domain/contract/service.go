package contract

import (
	"net/url"
	"time"

	"github.com/diegoclair/presenter-rotation/internal/domain/entity"
)

// SchedulerService maps calendar weeks to presenters
type SchedulerService interface {
	CurrentWeekNumber() int
	PresenterForWeek(roster entity.Roster, week int) (entity.Presenter, error)
	WeekStartDate(week, day int) time.Time
	Current(roster entity.Roster, settings entity.Settings) (entity.WeeklyPresenter, error)
	Upcoming(roster entity.Roster, settings entity.Settings, weeks int) ([]entity.WeeklyPresenter, error)
}

// RotationController mediates user actions on the roster and settings
type RotationController interface {
	Load(query url.Values) error
	BeginSwap(id int) error
	SelectForSwap(id int) error
	CancelSwap()
	ToggleEdit()
	SetPendingName(name string)
	AddPresenter() (*entity.Presenter, error)
	RemovePresenter(id int) error
	SetPresentationDay(day int) error
	Snapshot() entity.ViewState
}
