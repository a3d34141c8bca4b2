// Package i18n resolves the reader's locale and formats presentation dates
// and UI strings for it. Locales are embedded YAML catalogs registered into
// golang.org/x/text/message printers; en-US is the base every other locale
// falls back to.
package i18n

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/presenter-rotation/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every catalog falls back to
const BaseLocale = "en-US"

const dateFormatKey = "date.format"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale     string            `yaml:"locale"`
	Name       string            `yaml:"name"`
	DateFormat string            `yaml:"date_format"`
	Months     []string          `yaml:"months"`
	Weekdays   []string          `yaml:"weekdays"`
	Messages   map[string]string `yaml:"messages"`
}

// Locale is a supported language option
type Locale struct {
	Tag  language.Tag
	Name string
}

type Localizer struct {
	locales   []Locale
	supported []language.Tag
	matcher   language.Matcher
	catalog   *catalog.Builder
}

// Load builds a localizer from the embedded catalogs. defaultLocale is the
// locale served when the request expresses no usable preference.
func Load(defaultLocale string) (*Localizer, error) {
	return LoadFromFS(embeddedLocales, defaultLocale)
}

// LoadFromFS builds a localizer from locales/*.yaml files in fsys
func LoadFromFS(fsys fs.FS, defaultLocale string) (*Localizer, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	files := make(map[string]localeFile, len(paths))
	for _, p := range paths {
		file, err := readLocaleFile(fsys, p)
		if err != nil {
			return nil, err
		}
		files[file.Locale] = file
	}

	base, ok := files[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	l := &Localizer{
		catalog: catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
	}

	// the default locale goes first so the matcher falls back to it
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == defaultTag.String() || names[j] == defaultTag.String() {
			return names[i] == defaultTag.String()
		}
		return names[i] < names[j]
	})
	if names[0] != defaultTag.String() {
		return nil, fmt.Errorf("default locale %s has no catalog", defaultTag)
	}

	for _, name := range names {
		file := files[name]
		tag := language.MustParse(file.Locale)
		if err := l.register(tag, base, file); err != nil {
			return nil, err
		}
		l.locales = append(l.locales, Locale{Tag: tag, Name: file.Name})
		l.supported = append(l.supported, tag)
	}
	l.matcher = language.NewMatcher(l.supported)

	return l, nil
}

func readLocaleFile(fsys fs.FS, p string) (localeFile, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return localeFile{}, fmt.Errorf("failed to read catalog %s: %w", p, err)
	}

	var file localeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return localeFile{}, fmt.Errorf("failed to parse catalog %s: %w", p, err)
	}

	localeFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
	switch {
	case file.Locale != localeFromPath:
		return localeFile{}, fmt.Errorf("catalog %s: locale %q must match file name", p, file.Locale)
	case len(file.Months) != 12:
		return localeFile{}, fmt.Errorf("catalog %s: expected 12 months, got %d", p, len(file.Months))
	case len(file.Weekdays) != 7:
		return localeFile{}, fmt.Errorf("catalog %s: expected 7 weekdays, got %d", p, len(file.Weekdays))
	}
	if _, err := language.Parse(file.Locale); err != nil {
		return localeFile{}, fmt.Errorf("catalog %s: invalid locale: %w", p, err)
	}

	return file, nil
}

// register adds every key of file to the catalog, filling keys the locale
// does not translate with the base locale's value.
func (l *Localizer) register(tag language.Tag, base, file localeFile) error {
	entries := map[string]string{}
	for key, value := range base.Messages {
		entries[key] = value
	}
	for key, value := range file.Messages {
		if _, ok := base.Messages[key]; !ok {
			return fmt.Errorf("catalog %s: key %q is not defined in %s", file.Locale, key, BaseLocale)
		}
		entries[key] = value
	}

	entries[dateFormatKey] = base.DateFormat
	if file.DateFormat != "" {
		entries[dateFormatKey] = file.DateFormat
	}
	for i, month := range file.Months {
		entries[monthKey(time.Month(i+1))] = month
	}
	for i, day := range file.Weekdays {
		entries[weekdayKey(time.Weekday(i))] = day
	}

	for key, value := range entries {
		if err := l.catalog.SetString(tag, key, value); err != nil {
			return fmt.Errorf("failed to register %s/%s: %w", file.Locale, key, err)
		}
	}
	return nil
}

// Locales returns the supported locales, default first
func (l *Localizer) Locales() []Locale {
	return append([]Locale(nil), l.locales...)
}

// Default returns the locale used when nothing else matches
func (l *Localizer) Default() language.Tag {
	return l.supported[0]
}

// Match returns the supported locale closest to the preferred tags
func (l *Localizer) Match(preferred ...language.Tag) language.Tag {
	if len(preferred) == 0 {
		return l.Default()
	}
	_, idx, confidence := l.matcher.Match(preferred...)
	if confidence == language.No {
		return l.Default()
	}
	return l.supported[idx]
}

// ParseTag resolves a single locale string, reporting whether it matched
func (l *Localizer) ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return l.Default(), false
	}
	_, idx, confidence := l.matcher.Match(tag)
	if confidence == language.No {
		return l.Default(), false
	}
	return l.supported[idx], true
}

// ResolveRequest picks the locale for r: the lang query parameter, then the
// Accept-Language header, then the default.
func (l *Localizer) ResolveRequest(r *http.Request) language.Tag {
	if r == nil {
		return l.Default()
	}

	if lang := r.URL.Query().Get(domain.ParamLang); lang != "" {
		if tag, ok := l.ParseTag(lang); ok {
			return tag
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return l.Match(tags...)
		}
	}

	return l.Default()
}

// For returns a formatter bound to tag
func (l *Localizer) For(tag language.Tag) *Formatter {
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(l.catalog)),
	}
}

// Formatter renders dates and UI strings in one locale
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// FormatDate renders the short month, day and year, e.g. "Jan 5, 2025"
func (f *Formatter) FormatDate(t time.Time) string {
	month := f.printer.Sprintf(monthKey(t.Month()))
	// numbers are passed as strings so the printer does not group digits
	return f.printer.Sprintf(dateFormatKey, month, strconv.Itoa(t.Day()), strconv.Itoa(t.Year()))
}

// FormatDayOfWeek renders the full weekday name, e.g. "Monday"
func (f *Formatter) FormatDayOfWeek(t time.Time) string {
	return f.WeekdayName(t.Weekday())
}

func (f *Formatter) WeekdayName(day time.Weekday) string {
	return f.printer.Sprintf(weekdayKey(day))
}

// T translates key, formatting args into the message
func (f *Formatter) T(key string, args ...any) string {
	return f.printer.Sprintf(key, args...)
}

func monthKey(m time.Month) string {
	return "month." + strconv.Itoa(int(m))
}

func weekdayKey(d time.Weekday) string {
	return "weekday." + strconv.Itoa(int(d))
}
