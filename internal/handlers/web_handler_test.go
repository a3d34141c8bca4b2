package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/diegoclair/presenter-rotation/internal/domain"
	"github.com/diegoclair/presenter-rotation/internal/domain/entity"
	"github.com/diegoclair/presenter-rotation/internal/handlers"
	"github.com/diegoclair/presenter-rotation/internal/handlers/test"
	"github.com/diegoclair/presenter-rotation/internal/urlstate"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var webRoster = entity.Roster{
	{ID: 1, Name: "Alice"},
	{ID: 2, Name: "Bob"},
	{ID: 3, Name: "Carol"},
}

func stateQuery(roster entity.Roster, settings entity.Settings, extra url.Values) string {
	values := urlstate.Encode(roster, settings)
	for key, vals := range extra {
		values[key] = vals
	}
	return values.Encode()
}

func redirectQuery(t *testing.T, rec *httptest.ResponseRecorder) url.Values {
	t.Helper()

	require.Equal(t, http.StatusSeeOther, rec.Code)
	u, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/", u.Path)
	return u.Query()
}

func serve(t *testing.T, req *http.Request, fn func(h *handlers.WebHandler, c echo.Context) error, params ...string) *httptest.ResponseRecorder {
	t.Helper()

	h := test.GetWebHandlerTest(t)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}

	require.NoError(t, fn(h, c))
	return rec
}

func TestWebHandler_HandleIndex(t *testing.T) {
	monday := entity.Settings{PresentationDay: domain.Monday}

	t.Run("Should redirect a bare URL to the default state", func(t *testing.T) {
		rec := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), (*handlers.WebHandler).HandleIndex)

		query := redirectQuery(t, rec)
		assert.Equal(t, domain.DefaultRoster(), urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
		assert.Equal(t, monday, urlstate.DecodeSettings(query.Get(domain.ParamSettings)))
	})

	t.Run("Should redirect a malformed roster to the default one", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?presenters=not-json&lang=de-DE", nil)
		rec := serve(t, req, (*handlers.WebHandler).HandleIndex)

		query := redirectQuery(t, rec)
		assert.Equal(t, domain.DefaultRoster(), urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
		assert.Equal(t, "de-DE", query.Get(domain.ParamLang))
	})

	t.Run("Should render the current and upcoming presenters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?"+stateQuery(webRoster, monday, nil), nil)
		rec := serve(t, req, (*handlers.WebHandler).HandleIndex)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Weekly Status Presenter")
		assert.Contains(t, body, `<p class="current">Bob</p>`)
		assert.Contains(t, body, "Monday, Jan 13, 2025")
		assert.Contains(t, body, "Monday, Feb 10, 2025")
		assert.Contains(t, body, test.PublicURL+"/?")
		assert.NotContains(t, body, `role="alert"`)
	})

	t.Run("Should render in the requested language", func(t *testing.T) {
		extra := url.Values{domain.ParamLang: {"pt-BR"}}
		req := httptest.NewRequest(http.MethodGet, "/?"+stateQuery(webRoster, monday, extra), nil)
		rec := serve(t, req, (*handlers.WebHandler).HandleIndex)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Apresentador da Semana")
		assert.Contains(t, rec.Body.String(), "13 de jan. de 2025")
	})

	t.Run("Should show the flash message of a rejected removal", func(t *testing.T) {
		extra := url.Values{domain.ParamError: {"minimum"}}
		req := httptest.NewRequest(http.MethodGet, "/?"+stateQuery(webRoster[:2], monday, extra), nil)
		rec := serve(t, req, (*handlers.WebHandler).HandleIndex)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Cannot remove presenter. Minimum 2 presenters required.")
	})

	t.Run("Should show the swap controls while a swap is pending", func(t *testing.T) {
		extra := url.Values{domain.ParamSwap: {"2"}}
		req := httptest.NewRequest(http.MethodGet, "/?"+stateQuery(webRoster, monday, extra), nil)
		rec := serve(t, req, (*handlers.WebHandler).HandleIndex)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Cancel Swap")
		assert.Contains(t, rec.Body.String(), "Pick the presenter to swap with Bob")
	})
}

func TestWebHandler_Actions(t *testing.T) {
	monday := entity.Settings{PresentationDay: domain.Monday}

	tests := []struct {
		name    string
		target  string
		handler func(h *handlers.WebHandler, c echo.Context) error
		params  []string
		roster  entity.Roster
		extra   url.Values
		form    url.Values
		check   func(t *testing.T, query url.Values)
	}{
		{
			name:    "Should start a swap",
			target:  "/swap",
			handler: (*handlers.WebHandler).HandleSwap,
			roster:  webRoster,
			form:    url.Values{"id": {"1"}},
			check: func(t *testing.T, query url.Values) {
				assert.Equal(t, "1", query.Get(domain.ParamSwap))
				assert.Equal(t, webRoster, urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
			},
		},
		{
			name:    "Should complete a pending swap",
			target:  "/swap",
			handler: (*handlers.WebHandler).HandleSwap,
			roster:  webRoster,
			extra:   url.Values{domain.ParamSwap: {"1"}},
			form:    url.Values{"id": {"3"}},
			check: func(t *testing.T, query url.Values) {
				assert.Empty(t, query.Get(domain.ParamSwap))
				assert.Equal(t, entity.Roster{
					{ID: 3, Name: "Carol"},
					{ID: 2, Name: "Bob"},
					{ID: 1, Name: "Alice"},
				}, urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
			},
		},
		{
			name:    "Should cancel a pending swap",
			target:  "/swap/cancel",
			handler: (*handlers.WebHandler).HandleCancelSwap,
			roster:  webRoster,
			extra:   url.Values{domain.ParamSwap: {"1"}},
			check: func(t *testing.T, query url.Values) {
				assert.Empty(t, query.Get(domain.ParamSwap))
				assert.Equal(t, webRoster, urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
			},
		},
		{
			name:    "Should toggle edit mode and keep the language",
			target:  "/edit",
			handler: (*handlers.WebHandler).HandleToggleEdit,
			roster:  webRoster,
			extra:   url.Values{domain.ParamLang: {"fr-FR"}},
			check: func(t *testing.T, query url.Values) {
				assert.Equal(t, "1", query.Get(domain.ParamEdit))
				assert.Equal(t, "fr-FR", query.Get(domain.ParamLang))
			},
		},
		{
			name:    "Should add a presenter with the next id",
			target:  "/presenters",
			handler: (*handlers.WebHandler).HandleAddPresenter,
			roster:  webRoster,
			extra:   url.Values{domain.ParamEdit: {"1"}},
			form:    url.Values{"name": {"  Dave  "}},
			check: func(t *testing.T, query url.Values) {
				roster := urlstate.DecodeRoster(query.Get(domain.ParamPresenters))
				require.Len(t, roster, 4)
				assert.Equal(t, entity.Presenter{ID: 4, Name: "Dave"}, roster[3])
				assert.Equal(t, "1", query.Get(domain.ParamEdit))
			},
		},
		{
			name:    "Should ignore a blank name",
			target:  "/presenters",
			handler: (*handlers.WebHandler).HandleAddPresenter,
			roster:  webRoster,
			form:    url.Values{"name": {"   "}},
			check: func(t *testing.T, query url.Values) {
				assert.Equal(t, webRoster, urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
			},
		},
		{
			name:    "Should remove a presenter",
			target:  "/presenters/2/remove",
			handler: (*handlers.WebHandler).HandleRemovePresenter,
			params:  []string{"id", "2"},
			roster:  webRoster,
			check: func(t *testing.T, query url.Values) {
				assert.Equal(t, entity.Roster{{ID: 1, Name: "Alice"}, {ID: 3, Name: "Carol"}},
					urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
				assert.Empty(t, query.Get(domain.ParamError))
			},
		},
		{
			name:    "Should refuse to go below two presenters",
			target:  "/presenters/2/remove",
			handler: (*handlers.WebHandler).HandleRemovePresenter,
			params:  []string{"id", "2"},
			roster:  webRoster[:2],
			check: func(t *testing.T, query url.Values) {
				assert.Equal(t, webRoster[:2], urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
				assert.Equal(t, "minimum", query.Get(domain.ParamError))
			},
		},
		{
			name:    "Should report an unknown presenter",
			target:  "/presenters/9/remove",
			handler: (*handlers.WebHandler).HandleRemovePresenter,
			params:  []string{"id", "9"},
			roster:  webRoster,
			check: func(t *testing.T, query url.Values) {
				assert.Equal(t, webRoster, urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
				assert.Equal(t, "not_found", query.Get(domain.ParamError))
			},
		},
		{
			name:    "Should change the presentation day",
			target:  "/settings",
			handler: (*handlers.WebHandler).HandleSetDay,
			roster:  webRoster,
			form:    url.Values{"day": {"3"}},
			check: func(t *testing.T, query url.Values) {
				assert.Equal(t, entity.Settings{PresentationDay: domain.Wednesday},
					urlstate.DecodeSettings(query.Get(domain.ParamSettings)))
			},
		},
		{
			name:    "Should reject an out of range day",
			target:  "/settings",
			handler: (*handlers.WebHandler).HandleSetDay,
			roster:  webRoster,
			form:    url.Values{"day": {"9"}},
			check: func(t *testing.T, query url.Values) {
				assert.Equal(t, monday, urlstate.DecodeSettings(query.Get(domain.ParamSettings)))
				assert.Equal(t, "invalid_day", query.Get(domain.ParamError))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{"state": {stateQuery(tt.roster, monday, tt.extra)}}
			for key, vals := range tt.form {
				form[key] = vals
			}

			req := test.CreateFormRequest(t, tt.target, form)
			rec := serve(t, req, tt.handler, tt.params...)

			tt.check(t, redirectQuery(t, rec))
		})
	}
}

func TestWebHandler_HandleSchedule(t *testing.T) {
	monday := entity.Settings{PresentationDay: domain.Monday}

	type entry struct {
		Week      int    `json:"week"`
		Date      string `json:"date"`
		Weekday   string `json:"weekday"`
		Formatted string `json:"formatted"`
		Name      string `json:"name"`
	}
	type response struct {
		Locale   string  `json:"locale"`
		Current  entry   `json:"current"`
		Upcoming []entry `json:"upcoming"`
	}

	t.Run("Should return the current and upcoming presenters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/schedule?"+stateQuery(webRoster, monday, nil), nil)
		rec := serve(t, req, (*handlers.WebHandler).HandleSchedule)

		require.Equal(t, http.StatusOK, rec.Code)
		var got response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

		assert.Equal(t, "en-US", got.Locale)
		assert.Equal(t, entry{Week: 1, Date: "2025-01-13", Weekday: "Monday", Formatted: "Jan 13, 2025", Name: "Bob"}, got.Current)
		require.Len(t, got.Upcoming, test.UpcomingWeeks)
		assert.Equal(t, "Carol", got.Upcoming[0].Name)
		assert.Equal(t, "2025-01-20", got.Upcoming[0].Date)
	})

	t.Run("Should honour the weeks parameter", func(t *testing.T) {
		extra := url.Values{"weeks": {"2"}}
		req := httptest.NewRequest(http.MethodGet, "/api/schedule?"+stateQuery(webRoster, monday, extra), nil)
		rec := serve(t, req, (*handlers.WebHandler).HandleSchedule)

		require.Equal(t, http.StatusOK, rec.Code)
		var got response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got.Upcoming, 2)
	})

	t.Run("Should reject an invalid weeks parameter", func(t *testing.T) {
		extra := url.Values{"weeks": {"99"}}
		req := httptest.NewRequest(http.MethodGet, "/api/schedule?"+stateQuery(webRoster, monday, extra), nil)
		rec := serve(t, req, (*handlers.WebHandler).HandleSchedule)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWebHandler_AddAfterRemovingHighestID(t *testing.T) {
	monday := entity.Settings{PresentationDay: domain.Monday}

	form := url.Values{"state": {stateQuery(domain.DefaultRoster(), monday, nil)}}
	rec := serve(t, test.CreateFormRequest(t, "/presenters/5/remove", form), (*handlers.WebHandler).HandleRemovePresenter, "id", "5")
	afterRemove := redirectQuery(t, rec)
	require.Len(t, urlstate.DecodeRoster(afterRemove.Get(domain.ParamPresenters)), 4)
	assert.Equal(t, "6", afterRemove.Get(domain.ParamNext))

	form = url.Values{"state": {afterRemove.Encode()}, "name": {"Zed"}}
	rec = serve(t, test.CreateFormRequest(t, "/presenters", form), (*handlers.WebHandler).HandleAddPresenter)
	afterAdd := redirectQuery(t, rec)

	roster := urlstate.DecodeRoster(afterAdd.Get(domain.ParamPresenters))
	require.Len(t, roster, 5)
	assert.Equal(t, entity.Presenter{ID: 6, Name: "Zed"}, roster[4])
	assert.Empty(t, afterAdd.Get(domain.ParamNext))
}

func TestWebHandler_Actions_KeepDecodablePairs(t *testing.T) {
	monday := entity.Settings{PresentationDay: domain.Monday}

	form := url.Values{"state": {"%zz=1&" + stateQuery(webRoster, monday, nil)}}
	rec := serve(t, test.CreateFormRequest(t, "/edit", form), (*handlers.WebHandler).HandleToggleEdit)

	query := redirectQuery(t, rec)
	assert.Equal(t, webRoster, urlstate.DecodeRoster(query.Get(domain.ParamPresenters)))
	assert.Equal(t, "1", query.Get(domain.ParamEdit))
}
