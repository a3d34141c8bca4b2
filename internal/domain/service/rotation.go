package service

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/diegoclair/presenter-rotation/internal/domain"
	"github.com/diegoclair/presenter-rotation/internal/domain/contract"
	"github.com/diegoclair/presenter-rotation/internal/domain/entity"
	"github.com/diegoclair/presenter-rotation/internal/metrics"
	"github.com/diegoclair/presenter-rotation/internal/urlstate"
)

type rotationController struct {
	persister contract.StatePersister

	roster   entity.Roster
	settings entity.Settings

	mode        entity.Mode
	selectedID  int
	editing     bool
	pendingName string

	// nextID only moves forward, so ids freed by a removal are never handed out again
	nextID int
}

func newRotationController(persister contract.StatePersister) *rotationController {
	return &rotationController{
		persister: persister,
		roster:    domain.DefaultRoster(),
		settings:  urlstate.DefaultSettings(),
		mode:      entity.ModeNormal,
		nextID:    domain.DefaultRoster().MaxID() + 1,
	}
}

// Load restores state from the page query and mirrors it back through the
// persister, the same way the page writes its URL when it is first shown.
func (c *rotationController) Load(query url.Values) error {
	c.roster = c.loadRoster(query.Get(domain.ParamPresenters))
	c.settings = c.loadSettings(query.Get(domain.ParamSettings))
	c.nextID = c.roster.MaxID() + 1
	if next, err := strconv.Atoi(query.Get(domain.ParamNext)); err == nil && next > c.nextID {
		c.nextID = next
	}

	c.resetSwap()
	if raw := query.Get(domain.ParamSwap); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && c.roster.IndexOf(id) >= 0 {
			c.mode = entity.ModeSwapPending
			c.selectedID = id
		}
	}
	c.editing = isTruthy(query.Get(domain.ParamEdit))

	return c.persist()
}

func (c *rotationController) loadRoster(encoded string) entity.Roster {
	if encoded == "" {
		return domain.DefaultRoster()
	}

	roster, err := urlstate.ParseRoster(encoded)
	if err != nil {
		slog.Warn("Failed to decode presenters from URL, using default roster", "error", err)
		metrics.RecordDecodeFailure(domain.ParamPresenters)
		return domain.DefaultRoster()
	}

	if len(roster) < domain.MinPresenters {
		slog.Warn("Presenters in URL are below the minimum, using default roster",
			"count", len(roster), "minimum", domain.MinPresenters)
		metrics.RecordDecodeFailure(domain.ParamPresenters)
		return domain.DefaultRoster()
	}

	return roster
}

func (c *rotationController) loadSettings(encoded string) entity.Settings {
	if encoded == "" {
		return urlstate.DefaultSettings()
	}

	settings, err := urlstate.ParseSettings(encoded)
	if err != nil {
		slog.Warn("Failed to decode settings from URL, using defaults", "error", err)
		metrics.RecordDecodeFailure(domain.ParamSettings)
		return urlstate.DefaultSettings()
	}

	return settings
}

// BeginSwap records id as the first selection of a swap
func (c *rotationController) BeginSwap(id int) error {
	if c.roster.IndexOf(id) < 0 {
		return domain.ErrPresenterNotFound
	}

	c.mode = entity.ModeSwapPending
	c.selectedID = id
	return nil
}

// SelectForSwap completes a pending swap with id. Outside swap mode it starts
// one; selecting the already selected presenter does nothing.
func (c *rotationController) SelectForSwap(id int) error {
	if c.mode != entity.ModeSwapPending {
		return c.BeginSwap(id)
	}

	if id == c.selectedID {
		return nil
	}

	first := c.roster.IndexOf(c.selectedID)
	second := c.roster.IndexOf(id)
	if first < 0 || second < 0 {
		return domain.ErrPresenterNotFound
	}

	roster := c.roster.Clone()
	roster[first], roster[second] = roster[second], roster[first]
	c.roster = roster
	c.resetSwap()

	return c.persist()
}

func (c *rotationController) CancelSwap() {
	c.resetSwap()
}

func (c *rotationController) ToggleEdit() {
	c.editing = !c.editing
}

func (c *rotationController) SetPendingName(name string) {
	c.pendingName = name
}

// AddPresenter appends the pending name to the roster. A blank name is
// ignored and returns a nil presenter.
func (c *rotationController) AddPresenter() (*entity.Presenter, error) {
	name := strings.TrimSpace(c.pendingName)
	if name == "" {
		return nil, nil
	}

	if maxID := c.roster.MaxID(); c.nextID <= maxID {
		c.nextID = maxID + 1
	}

	presenter := entity.Presenter{ID: c.nextID, Name: name}
	c.nextID++

	roster := c.roster.Clone()
	c.roster = append(roster, presenter)
	c.pendingName = ""

	if err := c.persist(); err != nil {
		return nil, err
	}

	slog.Debug("Presenter added", "id", presenter.ID, "name", presenter.Name)
	return &presenter, nil
}

// RemovePresenter drops the presenter with id, keeping the order of the rest
func (c *rotationController) RemovePresenter(id int) error {
	if len(c.roster) <= domain.MinPresenters {
		return domain.ErrMinimumPresenters
	}

	idx := c.roster.IndexOf(id)
	if idx < 0 {
		return domain.ErrPresenterNotFound
	}

	roster := make(entity.Roster, 0, len(c.roster)-1)
	roster = append(roster, c.roster[:idx]...)
	roster = append(roster, c.roster[idx+1:]...)
	c.roster = roster

	if c.mode == entity.ModeSwapPending && c.selectedID == id {
		c.resetSwap()
	}

	return c.persist()
}

func (c *rotationController) SetPresentationDay(day int) error {
	if !domain.IsValidDay(day) {
		return domain.ErrInvalidDay
	}

	c.settings = entity.Settings{PresentationDay: day}
	return c.persist()
}

func (c *rotationController) Snapshot() entity.ViewState {
	return entity.ViewState{
		Roster:      c.roster.Clone(),
		Settings:    c.settings,
		Mode:        c.mode,
		SelectedID:  c.selectedID,
		Editing:     c.editing,
		PendingName: c.pendingName,
		NextID:      c.nextID,
	}
}

func (c *rotationController) resetSwap() {
	c.mode = entity.ModeNormal
	c.selectedID = 0
}

func (c *rotationController) persist() error {
	if err := c.persister.Persist(c.roster.Clone(), c.settings); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

func isTruthy(value string) bool {
	ok, err := strconv.ParseBool(value)
	return err == nil && ok
}
