package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/presenter-rotation/internal/domain"
	"github.com/diegoclair/presenter-rotation/internal/domain/contract"
	"github.com/diegoclair/presenter-rotation/internal/domain/entity"
	"github.com/diegoclair/presenter-rotation/internal/i18n"
	"github.com/diegoclair/presenter-rotation/internal/metrics"
	"github.com/diegoclair/presenter-rotation/internal/urlstate"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// formState is the form field carrying the page's query string
const formState = "state"

// Flash codes passed back to the page after a rejected action
const (
	flashMinimum    = "minimum"
	flashNotFound   = "not_found"
	flashInvalidDay = "invalid_day"
)

var flashMessages = map[string]string{
	flashMinimum:    "error.minimum",
	flashNotFound:   "error.not_found",
	flashInvalidDay: "error.invalid_day",
}

// ControllerFactory builds a controller that reports state changes to persister
type ControllerFactory func(persister contract.StatePersister) contract.RotationController

type WebHandler struct {
	scheduler     contract.SchedulerService
	newController ControllerFactory
	localizer     *i18n.Localizer
	page          *template.Template
	publicURL     string
	upcomingWeeks int
}

func NewWebHandler(scheduler contract.SchedulerService, newController ControllerFactory, localizer *i18n.Localizer, publicURL string, upcomingWeeks int) (*WebHandler, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &WebHandler{
		scheduler:     scheduler,
		newController: newController,
		localizer:     localizer,
		page:          page,
		publicURL:     strings.TrimSuffix(publicURL, "/"),
		upcomingWeeks: upcomingWeeks,
	}, nil
}

type pageData struct {
	F         *i18n.Formatter
	Lang      string
	State     string
	ShareURL  string
	Flash     string
	Current   scheduleRow
	Upcoming  []scheduleRow
	Roster    []rosterRow
	SwapMode  bool
	Selected  string
	Editing   bool
	Pending   string
	Days      []dayOption
	Locales   []localeOption
	CanRemove bool
}

type scheduleRow struct {
	Week      int
	ID        int
	Weekday   string
	Date      string
	Presenter string
}

type rosterRow struct {
	Position int
	ID       int
	Name     string
	Selected bool
}

type dayOption struct {
	Value    int
	Label    string
	Selected bool
}

type localeOption struct {
	Tag    string
	Name   string
	Href   string
	Active bool
}

// HandleIndex renders the rotation page for the state in the query. A URL
// that does not carry the canonical encoding of that state yet is rewritten
// first.
func (h *WebHandler) HandleIndex(c echo.Context) error {
	query := c.QueryParams()
	persister := urlstate.NewQueryPersister("/")
	ctrl := h.newController(persister)
	if err := ctrl.Load(query); err != nil {
		slog.Error("Failed to load rotation state", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to load rotation")
	}

	view := ctrl.Snapshot()
	lang := query.Get(domain.ParamLang)
	persisted := persister.Values()
	if query.Get(domain.ParamPresenters) != persisted.Get(domain.ParamPresenters) ||
		query.Get(domain.ParamSettings) != persisted.Get(domain.ParamSettings) {
		return c.Redirect(http.StatusSeeOther, persister.Location(view, lang))
	}

	f := h.localizer.For(h.localizer.ResolveRequest(c.Request()))

	current, err := h.scheduler.Current(view.Roster, view.Settings)
	if err != nil {
		slog.Error("Failed to compute current presenter", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to compute schedule")
	}
	upcoming, err := h.scheduler.Upcoming(view.Roster, view.Settings, h.upcomingWeeks)
	if err != nil {
		slog.Error("Failed to compute upcoming presenters", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to compute schedule")
	}

	data := pageData{
		F:         f,
		Lang:      f.Tag().String(),
		State:     persister.Query(view, lang),
		ShareURL:  h.publicURL + "/?" + persisted.Encode(),
		Current:   newScheduleRow(f, current.Week, current.Date, current.Presenter),
		SwapMode:  view.SwapMode(),
		Editing:   view.Editing,
		Pending:   view.PendingName,
		CanRemove: len(view.Roster) > domain.MinPresenters,
	}
	if key, ok := flashMessages[query.Get(domain.ParamError)]; ok {
		data.Flash = f.T(key)
	}
	for _, wp := range upcoming {
		data.Upcoming = append(data.Upcoming, newScheduleRow(f, wp.Week, wp.Date, wp.Presenter))
	}
	for i, p := range view.Roster {
		selected := view.SwapMode() && p.ID == view.SelectedID
		if selected {
			data.Selected = p.Name
		}
		data.Roster = append(data.Roster, rosterRow{Position: i + 1, ID: p.ID, Name: p.Name, Selected: selected})
	}
	for day := domain.Sunday; day <= domain.Saturday; day++ {
		data.Days = append(data.Days, dayOption{
			Value:    day,
			Label:    f.WeekdayName(time.Weekday(day)),
			Selected: day == view.Settings.PresentationDay,
		})
	}
	for _, l := range h.localizer.Locales() {
		data.Locales = append(data.Locales, localeOption{
			Tag:    l.Tag.String(),
			Name:   l.Name,
			Href:   "/?" + persister.Query(view, l.Tag.String()),
			Active: l.Tag == f.Tag(),
		})
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		slog.Error("Failed to render rotation page", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to render page")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func newScheduleRow(f *i18n.Formatter, week int, date time.Time, p entity.Presenter) scheduleRow {
	return scheduleRow{
		Week:      week,
		ID:        p.ID,
		Weekday:   f.FormatDayOfWeek(date),
		Date:      f.FormatDate(date),
		Presenter: p.Name,
	}
}

func (h *WebHandler) HandleSwap(c echo.Context) error {
	return h.act(c, "swap", func(ctrl contract.RotationController) error {
		id, err := formID(c.FormValue("id"))
		if err != nil {
			return err
		}
		return ctrl.SelectForSwap(id)
	})
}

func (h *WebHandler) HandleCancelSwap(c echo.Context) error {
	return h.act(c, "cancel_swap", func(ctrl contract.RotationController) error {
		ctrl.CancelSwap()
		return nil
	})
}

func (h *WebHandler) HandleToggleEdit(c echo.Context) error {
	return h.act(c, "toggle_edit", func(ctrl contract.RotationController) error {
		ctrl.ToggleEdit()
		return nil
	})
}

func (h *WebHandler) HandleAddPresenter(c echo.Context) error {
	return h.act(c, "add", func(ctrl contract.RotationController) error {
		ctrl.SetPendingName(c.FormValue("name"))
		_, err := ctrl.AddPresenter()
		return err
	})
}

func (h *WebHandler) HandleRemovePresenter(c echo.Context) error {
	return h.act(c, "remove", func(ctrl contract.RotationController) error {
		id, err := formID(c.Param("id"))
		if err != nil {
			return err
		}
		return ctrl.RemovePresenter(id)
	})
}

func (h *WebHandler) HandleSetDay(c echo.Context) error {
	return h.act(c, "set_day", func(ctrl contract.RotationController) error {
		day, err := strconv.Atoi(c.FormValue("day"))
		if err != nil {
			return domain.ErrInvalidDay
		}
		return ctrl.SetPresentationDay(day)
	})
}

// act rebuilds the controller from the posted page state, applies fn and
// redirects to the resulting URL. Rejected actions come back as a flash code.
func (h *WebHandler) act(c echo.Context, action string, fn func(ctrl contract.RotationController) error) error {
	// ParseQuery still returns the pairs it could decode
	state, err := url.ParseQuery(c.FormValue(formState))
	if err != nil {
		slog.Warn("Posted state has undecodable pairs", "action", action, "error", err)
	}

	persister := urlstate.NewQueryPersister("/")
	ctrl := h.newController(persister)
	if err := ctrl.Load(state); err != nil {
		metrics.RecordAction(action, metrics.ResultError)
		slog.Error("Failed to load rotation state", "action", action, "error", err)
		return c.String(http.StatusInternalServerError, "Failed to load rotation")
	}

	flash := ""
	if err := fn(ctrl); err != nil {
		switch {
		case errors.Is(err, domain.ErrMinimumPresenters):
			flash = flashMinimum
		case errors.Is(err, domain.ErrPresenterNotFound):
			flash = flashNotFound
		case errors.Is(err, domain.ErrInvalidDay):
			flash = flashInvalidDay
		default:
			metrics.RecordAction(action, metrics.ResultError)
			slog.Error("Failed to apply rotation action", "action", action, "error", err)
			return c.String(http.StatusInternalServerError, "Failed to update rotation")
		}
		metrics.RecordAction(action, metrics.ResultRejected)
		slog.Debug("Rotation action rejected", "action", action, "reason", err)
	} else {
		metrics.RecordAction(action, metrics.ResultOK)
	}

	location := persister.Location(ctrl.Snapshot(), state.Get(domain.ParamLang))
	if flash != "" {
		location += "&" + domain.ParamError + "=" + flash
	}
	return c.Redirect(http.StatusSeeOther, location)
}

func formID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrPresenterNotFound, raw)
	}
	return id, nil
}

type scheduleEntry struct {
	Week      int    `json:"week"`
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Formatted string `json:"formatted"`
	ID        int    `json:"id"`
	Name      string `json:"name"`
}

type scheduleResponse struct {
	Locale          string          `json:"locale"`
	PresentationDay int             `json:"presentationDay"`
	Current         scheduleEntry   `json:"current"`
	Upcoming        []scheduleEntry `json:"upcoming"`
}

// HandleSchedule returns the current and upcoming presenters as JSON. The
// optional weeks parameter overrides the configured upcoming count.
func (h *WebHandler) HandleSchedule(c echo.Context) error {
	query := c.QueryParams()
	ctrl := h.newController(urlstate.NewQueryPersister("/"))
	if err := ctrl.Load(query); err != nil {
		slog.Error("Failed to load rotation state", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load rotation"})
	}
	view := ctrl.Snapshot()

	weeks := h.upcomingWeeks
	if raw := query.Get("weeks"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > domain.MaxUpcomingWeeks {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("weeks must be between 0 and %d", domain.MaxUpcomingWeeks)})
		}
		weeks = n
	}

	current, err := h.scheduler.Current(view.Roster, view.Settings)
	if err != nil {
		slog.Error("Failed to compute current presenter", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute schedule"})
	}
	upcoming, err := h.scheduler.Upcoming(view.Roster, view.Settings, weeks)
	if err != nil {
		slog.Error("Failed to compute upcoming presenters", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to compute schedule"})
	}

	f := h.localizer.For(h.localizer.ResolveRequest(c.Request()))
	entry := func(week int, date time.Time, id int, name string) scheduleEntry {
		return scheduleEntry{
			Week:      week,
			Date:      date.Format(time.DateOnly),
			Weekday:   f.FormatDayOfWeek(date),
			Formatted: f.FormatDate(date),
			ID:        id,
			Name:      name,
		}
	}

	resp := scheduleResponse{
		Locale:          f.Tag().String(),
		PresentationDay: view.Settings.PresentationDay,
		Current:         entry(current.Week, current.Date, current.Presenter.ID, current.Presenter.Name),
		Upcoming:        make([]scheduleEntry, 0, len(upcoming)),
	}
	for _, wp := range upcoming {
		resp.Upcoming = append(resp.Upcoming, entry(wp.Week, wp.Date, wp.Presenter.ID, wp.Presenter.Name))
	}

	return c.JSON(http.StatusOK, resp)
}
