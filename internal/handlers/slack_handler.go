package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diegoclair/presenter-rotation/internal/domain"
	"github.com/diegoclair/presenter-rotation/internal/domain/contract"
	"github.com/diegoclair/presenter-rotation/internal/domain/entity"
	slackcmd "github.com/diegoclair/presenter-rotation/internal/domain/slack"
	"github.com/diegoclair/presenter-rotation/internal/i18n"
	"github.com/diegoclair/presenter-rotation/internal/metrics"
	"github.com/diegoclair/presenter-rotation/internal/urlstate"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	scheduler     contract.SchedulerService
	localizer     *i18n.Localizer
	signingSecret string
	upcomingWeeks int
}

func NewSlackHandler(scheduler contract.SchedulerService, localizer *i18n.Localizer, signingSecret string, upcomingWeeks int) *SlackHandler {
	return &SlackHandler{
		scheduler:     scheduler,
		localizer:     localizer,
		signingSecret: signingSecret,
		upcomingWeeks: upcomingWeeks,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		slog.Warn("Rejected slash command with invalid signature", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	f := h.localizer.For(h.localizer.Default())

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		metrics.RecordSlashCommand("unknown")
		word := strings.Fields(s.Text)[0]
		h.respondWithError(w, f.T("slack.unknown", word)+"\n\n"+slackcmd.GetHelpText())
		return
	}
	metrics.RecordSlashCommand(string(cmd.Type))

	response := h.handleCommand(cmd)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Failed to write slash command response", "error", err)
	}
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command) *slack.Msg {
	if cmd.Type == slackcmd.CmdHelp {
		return h.handleHelp()
	}

	f := h.localizer.For(h.localizer.Default())
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(f.T("slack.missing_link", string(cmd.Type)))
	}
	query, ok := cmd.Link()
	if !ok {
		return h.createErrorResponse(f.T("slack.bad_link", cmd.Args[0]))
	}
	if tag, ok := h.localizer.ParseTag(query.Get(domain.ParamLang)); ok {
		f = h.localizer.For(tag)
	}

	// strict decode: unlike the page, no fallback to the default roster
	roster, settings, err := urlstate.FromQuery(query)
	if err == nil && len(roster) < domain.MinPresenters {
		err = fmt.Errorf("%w: presenters: %d below minimum %d", urlstate.ErrMalformedState, len(roster), domain.MinPresenters)
	}
	if err != nil {
		slog.Warn("Rejected slash command link", "error", err)
		metrics.RecordDecodeFailure(domain.ParamPresenters)
		return h.createErrorResponse(f.T("slack.bad_link", cmd.Args[0]))
	}
	view := entity.ViewState{Roster: roster, Settings: settings}

	switch cmd.Type {
	case slackcmd.CmdWho:
		return h.handleWho(f, view)
	case slackcmd.CmdUpcoming:
		return h.handleUpcoming(f, cmd, view)
	case slackcmd.CmdList:
		return h.handleList(f, view)
	default:
		return h.createErrorResponse(f.T("slack.unknown", string(cmd.Type)))
	}
}

func (h *SlackHandler) handleWho(f *i18n.Formatter, view entity.ViewState) *slack.Msg {
	current, err := h.scheduler.Current(view.Roster, view.Settings)
	if err != nil {
		slog.Error("Failed to compute current presenter", "error", err)
		return h.createErrorResponse(err.Error())
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "📣 " + f.T("slack.who", current.Presenter.Name, f.FormatDayOfWeek(current.Date), f.FormatDate(current.Date)),
	}
}

func (h *SlackHandler) handleUpcoming(f *i18n.Formatter, cmd *slackcmd.Command, view entity.ViewState) *slack.Msg {
	weeks, err := cmd.Weeks(h.upcomingWeeks)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	upcoming, err := h.scheduler.Upcoming(view.Roster, view.Settings, weeks)
	if err != nil {
		slog.Error("Failed to compute upcoming presenters", "error", err)
		return h.createErrorResponse(err.Error())
	}

	var text strings.Builder
	text.WriteString(f.T("slack.upcoming.heading") + "\n")
	for _, wp := range upcoming {
		text.WriteString(fmt.Sprintf("• %s, %s: %s\n", f.FormatDayOfWeek(wp.Date), f.FormatDate(wp.Date), wp.Presenter.Name))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleList(f *i18n.Formatter, view entity.ViewState) *slack.Msg {
	var text strings.Builder
	text.WriteString(f.T("slack.list.heading") + "\n")
	for i, p := range view.Roster {
		text.WriteString(fmt.Sprintf("%d. %s\n", i+1, p.Name))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
