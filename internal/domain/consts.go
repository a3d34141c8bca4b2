package domain

// Weekday constants follow time.Weekday numbering (0=Sunday)
const (
	Sunday    = 0
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
)

// WeekdayNames maps weekday numbers to their English names
var WeekdayNames = map[int]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// DefaultPresentationDay is used when no settings are present in the URL
const DefaultPresentationDay = Monday

// MinPresenters is the smallest roster a user can shrink the rotation to
const MinPresenters = 2

// DefaultUpcomingWeeks is how many weeks after the current one are listed
const DefaultUpcomingWeeks = 5

// MaxUpcomingWeeks caps caller supplied upcoming counts
const MaxUpcomingWeeks = 52

// URL query parameters carrying the persisted state
const (
	ParamPresenters = "presenters"
	ParamSettings   = "settings"
)

// URL query parameters carrying transient UI state, never persisted
const (
	ParamSwap  = "swap"
	ParamEdit  = "edit"
	ParamLang  = "lang"
	ParamError = "error"
	ParamNext  = "next" // id counter, only while it runs ahead of the roster's highest id
)

// IsValidDay reports whether day is in the 0-6 range
func IsValidDay(day int) bool {
	return day >= Sunday && day <= Saturday
}
