package slack

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/diegoclair/presenter-rotation/internal/domain"
)

type CommandType string

const (
	CmdWho      CommandType = "who"
	CmdUpcoming CommandType = "upcoming"
	CmdList     CommandType = "list"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "who", "current", "now":
		cmd.Type = CmdWho
	case "upcoming", "next":
		cmd.Type = CmdUpcoming
	case "list", "ls", "order":
		cmd.Type = CmdList
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

// Link returns the rotation state carried by the command's first argument.
// Slack wraps pasted links as <url> or <url|label> and escapes ampersands,
// both are undone before the query is parsed.
func (c *Command) Link() (url.Values, bool) {
	if len(c.Args) == 0 {
		return nil, false
	}
	return ParseLink(c.Args[0])
}

// Weeks returns the optional week count of the upcoming command
func (c *Command) Weeks(fallback int) (int, error) {
	if len(c.Args) < 2 {
		return fallback, nil
	}

	n, err := strconv.Atoi(c.Args[1])
	if err != nil || n < 1 || n > domain.MaxUpcomingWeeks {
		return 0, fmt.Errorf("week count must be between 1 and %d", domain.MaxUpcomingWeeks)
	}
	return n, nil
}

// ParseLink extracts the query of a rotation URL. A bare query string is
// accepted too.
func ParseLink(raw string) (url.Values, bool) {
	link := strings.TrimSpace(raw)
	link = strings.TrimPrefix(link, "<")
	link = strings.TrimSuffix(link, ">")
	if i := strings.Index(link, "|"); i >= 0 {
		link = link[:i]
	}
	link = strings.ReplaceAll(link, "&amp;", "&")
	if link == "" {
		return nil, false
	}

	query := link
	if strings.Contains(link, "://") || strings.HasPrefix(link, "/") {
		u, err := url.Parse(link)
		if err != nil {
			return nil, false
		}
		query = u.RawQuery
	}
	query = strings.TrimPrefix(query, "?")

	values, err := url.ParseQuery(query)
	if err != nil || (values.Get(domain.ParamPresenters) == "" && values.Get(domain.ParamSettings) == "") {
		return nil, false
	}
	return values, true
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/presenter who <link>`" + ` - Show who presents this week
• ` + "`/presenter upcoming <link> [weeks]`" + ` - List the next presenters (default 5, max 52)
• ` + "`/presenter list <link>`" + ` - Show the presentation order
• ` + "`/presenter help`" + ` - Show this message

` + "`<link>`" + ` is the share link of a rotation page.`
}
