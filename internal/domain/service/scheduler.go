package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/presenter-rotation/internal/domain"
	"github.com/diegoclair/presenter-rotation/internal/domain/entity"
	"github.com/jonboulle/clockwork"
)

const daysPerWeek = 7

const oneWeek = daysPerWeek * 24 * time.Hour

type scheduler struct {
	clock clockwork.Clock
	epoch time.Time
}

func newScheduler(clock clockwork.Clock, epoch time.Time) *scheduler {
	return &scheduler{
		clock: clock,
		epoch: epoch,
	}
}

// weekBase returns the date week 0 starts on. Without a fixed epoch that is
// January 1st of the clock's current year, so week numbers restart every year.
func (s *scheduler) weekBase() time.Time {
	if !s.epoch.IsZero() {
		return s.epoch
	}
	now := s.clock.Now()
	return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
}

// CurrentWeekNumber returns the whole weeks elapsed since the week base
func (s *scheduler) CurrentWeekNumber() int {
	elapsed := s.clock.Now().Sub(s.weekBase())
	return floorDiv(int(elapsed/time.Millisecond), int(oneWeek/time.Millisecond))
}

// PresenterForWeek picks roster[week mod len(roster)]
func (s *scheduler) PresenterForWeek(roster entity.Roster, week int) (entity.Presenter, error) {
	if len(roster) == 0 {
		return entity.Presenter{}, domain.ErrEmptyRoster
	}
	return roster[mod(week, len(roster))], nil
}

// WeekStartDate returns the first date on or after the start of the given
// week that falls on day. It never moves backward.
func (s *scheduler) WeekStartDate(week, day int) time.Time {
	date := s.weekBase().AddDate(0, 0, week*daysPerWeek)
	daysToAdd := mod(day-int(date.Weekday()), daysPerWeek)
	return date.AddDate(0, 0, daysToAdd)
}

func (s *scheduler) Current(roster entity.Roster, settings entity.Settings) (entity.WeeklyPresenter, error) {
	return s.forWeek(roster, settings, s.CurrentWeekNumber())
}

// Upcoming lists the presentations of the weeks following the current one
func (s *scheduler) Upcoming(roster entity.Roster, settings entity.Settings, weeks int) ([]entity.WeeklyPresenter, error) {
	if weeks <= 0 {
		return nil, nil
	}

	current := s.CurrentWeekNumber()
	upcoming := make([]entity.WeeklyPresenter, 0, weeks)
	for i := 1; i <= weeks; i++ {
		wp, err := s.forWeek(roster, settings, current+i)
		if err != nil {
			return nil, err
		}
		upcoming = append(upcoming, wp)
	}

	return upcoming, nil
}

func (s *scheduler) forWeek(roster entity.Roster, settings entity.Settings, week int) (entity.WeeklyPresenter, error) {
	presenter, err := s.PresenterForWeek(roster, week)
	if err != nil {
		return entity.WeeklyPresenter{}, fmt.Errorf("failed to get presenter for week %d: %w", week, err)
	}

	return entity.WeeklyPresenter{
		Presenter: presenter,
		Week:      week,
		Date:      s.WeekStartDate(week, settings.PresentationDay),
	}, nil
}

// mod is the non-negative remainder of a / n
func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
