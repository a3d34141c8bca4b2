package urlstate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/diegoclair/presenter-rotation/internal/domain"
	"github.com/diegoclair/presenter-rotation/internal/domain/entity"
)

// ErrMalformedState is returned by the strict parsers when a query value is
// not a valid encoding of the expected shape.
var ErrMalformedState = errors.New("malformed state")

type presenterJSON struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`
}

type settingsJSON struct {
	PresentationDay *int `json:"presentationDay"`
}

// EncodeRoster serializes the roster to JSON and percent-encodes it
func EncodeRoster(roster entity.Roster) string {
	if roster == nil {
		roster = entity.Roster{}
	}
	data, err := json.Marshal(roster)
	if err != nil {
		// Presenter only holds an int and a string
		panic(fmt.Sprintf("urlstate: marshal roster: %v", err))
	}
	return EncodeComponent(string(data))
}

// DecodeRoster is the lenient decoder: anything that does not parse yields an
// empty roster.
func DecodeRoster(encoded string) entity.Roster {
	roster, err := ParseRoster(encoded)
	if err != nil {
		return entity.Roster{}
	}
	return roster
}

// ParseRoster decodes and validates an encoded roster. "[]" is a valid empty
// roster; everything that is not a JSON array of {id, name} objects with
// unique integer ids and non-empty names is ErrMalformedState.
func ParseRoster(encoded string) (entity.Roster, error) {
	raw, err := url.PathUnescape(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: presenters: %v", ErrMalformedState, err)
	}

	var items []presenterJSON
	if err := decodeStrict(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: presenters: %v", ErrMalformedState, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: presenters: expected an array", ErrMalformedState)
	}

	roster := make(entity.Roster, 0, len(items))
	seen := make(map[int]bool, len(items))
	for i, item := range items {
		if item.ID == nil || item.Name == nil {
			return nil, fmt.Errorf("%w: presenters[%d]: id and name are required", ErrMalformedState, i)
		}
		if seen[*item.ID] {
			return nil, fmt.Errorf("%w: presenters[%d]: duplicate id %d", ErrMalformedState, i, *item.ID)
		}
		if *item.Name == "" {
			return nil, fmt.Errorf("%w: presenters[%d]: name cannot be empty", ErrMalformedState, i)
		}
		seen[*item.ID] = true
		roster = append(roster, entity.Presenter{ID: *item.ID, Name: *item.Name})
	}

	return roster, nil
}

// EncodeSettings serializes settings to JSON and percent-encodes it
func EncodeSettings(settings entity.Settings) string {
	data, err := json.Marshal(settings)
	if err != nil {
		panic(fmt.Sprintf("urlstate: marshal settings: %v", err))
	}
	return EncodeComponent(string(data))
}

// DecodeSettings is the lenient decoder: failures fall back to Monday
func DecodeSettings(encoded string) entity.Settings {
	settings, err := ParseSettings(encoded)
	if err != nil {
		return DefaultSettings()
	}
	return settings
}

// ParseSettings decodes and validates encoded settings
func ParseSettings(encoded string) (entity.Settings, error) {
	raw, err := url.PathUnescape(encoded)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("%w: settings: %v", ErrMalformedState, err)
	}

	var s *settingsJSON
	if err := decodeStrict(raw, &s); err != nil {
		return entity.Settings{}, fmt.Errorf("%w: settings: %v", ErrMalformedState, err)
	}
	if s == nil || s.PresentationDay == nil {
		return entity.Settings{}, fmt.Errorf("%w: settings: presentationDay is required", ErrMalformedState)
	}
	if !domain.IsValidDay(*s.PresentationDay) {
		return entity.Settings{}, fmt.Errorf("%w: settings: %v", ErrMalformedState, domain.ErrInvalidDay)
	}

	return entity.Settings{PresentationDay: *s.PresentationDay}, nil
}

// DefaultSettings is used when the URL carries no usable settings
func DefaultSettings() entity.Settings {
	return entity.Settings{PresentationDay: domain.DefaultPresentationDay}
}

func decodeStrict(raw string, target any) error {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after value")
	}
	return nil
}

// EncodeComponent percent-encodes s the way browsers' encodeURIComponent
// does, so links produced here and in the browser are interchangeable.
func EncodeComponent(s string) string {
	var buf bytes.Buffer
	const hex = "0123456789ABCDEF"
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			buf.WriteByte(c)
			continue
		}
		buf.WriteByte('%')
		buf.WriteByte(hex[c>>4])
		buf.WriteByte(hex[c&0x0F])
	}
	return buf.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
