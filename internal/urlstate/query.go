package urlstate

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/diegoclair/presenter-rotation/internal/domain"
	"github.com/diegoclair/presenter-rotation/internal/domain/entity"
)

// Encode returns the query parameters that persist roster and settings
func Encode(roster entity.Roster, settings entity.Settings) url.Values {
	values := url.Values{}
	values.Set(domain.ParamPresenters, EncodeRoster(roster))
	values.Set(domain.ParamSettings, EncodeSettings(settings))
	return values
}

// FromQuery strictly decodes the state carried by values. The roster is
// required; missing settings mean the default day.
func FromQuery(values url.Values) (entity.Roster, entity.Settings, error) {
	encoded := values.Get(domain.ParamPresenters)
	if encoded == "" {
		return nil, entity.Settings{}, fmt.Errorf("%w: presenters: missing", ErrMalformedState)
	}
	roster, err := ParseRoster(encoded)
	if err != nil {
		return nil, entity.Settings{}, err
	}

	settings := DefaultSettings()
	if encoded := values.Get(domain.ParamSettings); encoded != "" {
		if settings, err = ParseSettings(encoded); err != nil {
			return nil, entity.Settings{}, err
		}
	}

	return roster, settings, nil
}

// QueryPersister keeps the latest persisted state as URL query parameters.
// Handlers redirect to its Location, which replaces the browser's current
// history entry with the new state.
type QueryPersister struct {
	path   string
	values url.Values
	writes int
}

func NewQueryPersister(path string) *QueryPersister {
	return &QueryPersister{
		path:   path,
		values: url.Values{},
	}
}

// Persist overwrites the presenters and settings parameters
func (p *QueryPersister) Persist(roster entity.Roster, settings entity.Settings) error {
	for key, vals := range Encode(roster, settings) {
		p.values[key] = vals
	}
	p.writes++
	return nil
}

// Writes is the number of times state was persisted
func (p *QueryPersister) Writes() int {
	return p.writes
}

// Values returns a copy of the persisted parameters
func (p *QueryPersister) Values() url.Values {
	out := make(url.Values, len(p.values))
	for key, vals := range p.values {
		out[key] = append([]string(nil), vals...)
	}
	return out
}

// Location builds the URL for the persisted state plus the transient UI
// parameters the next page needs.
func (p *QueryPersister) Location(view entity.ViewState, lang string) string {
	return p.path + "?" + p.Query(view, lang)
}

// Query encodes the persisted state and the transient UI parameters
func (p *QueryPersister) Query(view entity.ViewState, lang string) string {
	values := p.Values()
	if view.SwapMode() {
		values.Set(domain.ParamSwap, strconv.Itoa(view.SelectedID))
	}
	if view.NextID > view.Roster.MaxID()+1 {
		values.Set(domain.ParamNext, strconv.Itoa(view.NextID))
	}
	if view.Editing {
		values.Set(domain.ParamEdit, "1")
	}
	if lang != "" {
		values.Set(domain.ParamLang, lang)
	}
	return values.Encode()
}
