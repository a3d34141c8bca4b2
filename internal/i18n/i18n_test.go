package i18n

import (
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestLocalizer(t *testing.T) *Localizer {
	t.Helper()

	l, err := Load(BaseLocale)
	require.NoError(t, err)
	return l
}

func TestFormatter_FormatDate(t *testing.T) {
	l := newTestLocalizer(t)
	date := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en-US", want: "Jan 5, 2025"},
		{locale: "pt-BR", want: "5 de jan. de 2025"},
		{locale: "es-ES", want: "5 ene 2025"},
		{locale: "de-DE", want: "5. Jan. 2025"},
		{locale: "fr-FR", want: "5 janv. 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f := l.For(language.MustParse(tt.locale))
			assert.Equal(t, tt.want, f.FormatDate(date))
		})
	}
}

func TestFormatter_FormatDate_DoesNotGroupYear(t *testing.T) {
	l := newTestLocalizer(t)

	got := l.For(language.MustParse("en-US")).FormatDate(time.Date(12345, time.December, 31, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "Dec 31, 12345", got)
}

func TestFormatter_FormatDayOfWeek(t *testing.T) {
	l := newTestLocalizer(t)
	monday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en-US", want: "Monday"},
		{locale: "pt-BR", want: "segunda-feira"},
		{locale: "es-ES", want: "lunes"},
		{locale: "de-DE", want: "Montag"},
		{locale: "fr-FR", want: "lundi"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f := l.For(language.MustParse(tt.locale))
			assert.Equal(t, tt.want, f.FormatDayOfWeek(monday))
		})
	}

	en := l.For(language.MustParse("en-US"))
	for day := time.Sunday; day <= time.Saturday; day++ {
		assert.Equal(t, day.String(), en.WeekdayName(day))
	}
}

func TestFormatter_T(t *testing.T) {
	l := newTestLocalizer(t)

	en := l.For(language.MustParse("en-US"))
	assert.Equal(t, "Swap Presenter", en.T("button.swap"))
	assert.Equal(t, "Pick the presenter to swap with Bob", en.T("swap.hint", "Bob"))

	t.Run("Should fall back to the base locale for untranslated keys", func(t *testing.T) {
		es := l.For(language.MustParse("es-ES"))
		assert.Equal(t, "Cambiar Presentador", es.T("button.swap"))
		assert.Equal(t, en.T("share.label"), es.T("share.label"))
	})
}

func TestLocalizer_ResolveRequest(t *testing.T) {
	l := newTestLocalizer(t)

	tests := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{name: "Should default without preferences", target: "/", want: "en-US"},
		{name: "Should use Accept-Language", target: "/", accept: "pt-BR,pt;q=0.9,en;q=0.8", want: "pt-BR"},
		{name: "Should prefer the lang parameter", target: "/?lang=de-DE", accept: "pt-BR", want: "de-DE"},
		{name: "Should ignore an unknown lang parameter", target: "/?lang=zz-ZZ", accept: "es-ES", want: "es-ES"},
		{name: "Should fall back for unsupported languages", target: "/", accept: "ja-JP", want: "en-US"},
		{name: "Should fall back for a broken header", target: "/", accept: ";;;", want: "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, language.MustParse(tt.want), l.ResolveRequest(r))
		})
	}

	assert.Equal(t, l.Default(), l.ResolveRequest(nil))
}

func TestLoad_DefaultLocale(t *testing.T) {
	l, err := Load("pt-BR")
	require.NoError(t, err)

	assert.Equal(t, language.MustParse("pt-BR"), l.Default())
	assert.Equal(t, "pt-BR", l.Locales()[0].Tag.String())
	assert.Len(t, l.Locales(), 5)

	_, err = Load("xx-YY")
	require.Error(t, err)
}

func TestLoadFromFS_Validation(t *testing.T) {
	base := `locale: en-US
name: English
date_format: "%[1]s %[2]s, %[3]s"
months: [Jan, Feb, Mar, Apr, May, Jun, Jul, Aug, Sep, Oct, Nov, Dec]
weekdays: [Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday]
messages:
  button.add: Add
`

	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr bool
	}{
		{
			name:  "Should load a minimal base catalog",
			files: fstest.MapFS{"locales/en-US.yaml": {Data: []byte(base)}},
		},
		{
			name:    "Should fail without catalogs",
			files:   fstest.MapFS{},
			wantErr: true,
		},
		{
			name: "Should fail without the base locale",
			files: fstest.MapFS{
				"locales/pt-BR.yaml": {Data: []byte(`locale: pt-BR
months: [a, b, c, d, e, f, g, h, i, j, k, l]
weekdays: [a, b, c, d, e, f, g]
`)},
			},
			wantErr: true,
		},
		{
			name: "Should fail when the locale does not match the file name",
			files: fstest.MapFS{
				"locales/en-US.yaml": {Data: []byte(base)},
				"locales/de-DE.yaml": {Data: []byte(`locale: fr-FR
months: [a, b, c, d, e, f, g, h, i, j, k, l]
weekdays: [a, b, c, d, e, f, g]
`)},
			},
			wantErr: true,
		},
		{
			name: "Should fail with the wrong number of months",
			files: fstest.MapFS{
				"locales/en-US.yaml": {Data: []byte(`locale: en-US
months: [Jan]
weekdays: [a, b, c, d, e, f, g]
`)},
			},
			wantErr: true,
		},
		{
			name: "Should fail on keys unknown to the base locale",
			files: fstest.MapFS{
				"locales/en-US.yaml": {Data: []byte(base)},
				"locales/de-DE.yaml": {Data: []byte(`locale: de-DE
months: [a, b, c, d, e, f, g, h, i, j, k, l]
weekdays: [a, b, c, d, e, f, g]
messages:
  button.unknown: Nope
`)},
			},
			wantErr: true,
		},
		{
			name: "Should fail on unknown fields",
			files: fstest.MapFS{
				"locales/en-US.yaml": {Data: []byte(base + "extra: true\n")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFS(tt.files, BaseLocale)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
