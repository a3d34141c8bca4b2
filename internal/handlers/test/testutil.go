package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/presenter-rotation/internal/domain/service"
	"github.com/diegoclair/presenter-rotation/internal/handlers"
	"github.com/diegoclair/presenter-rotation/internal/i18n"
	"github.com/diegoclair/presenter-rotation/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	PublicURL     = "https://rota.example.com"
	UpcomingWeeks = 5
)

// Now is Thursday of week 1 of 2025, whose Monday presentation is January 13th
var Now = time.Date(2025, time.January, 9, 10, 0, 0, 0, time.UTC)

type ServiceMocks struct {
	SchedulerMock *mocks.MockSchedulerService
}

func newLocalizer(t *testing.T) *i18n.Localizer {
	t.Helper()

	l, err := i18n.Load(i18n.BaseLocale)
	require.NoError(t, err)
	return l
}

// GetHandlerTest builds a slash command handler with a mocked scheduler
func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		SchedulerMock: mocks.NewMockSchedulerService(ctrl),
	}

	handler = handlers.NewSlackHandler(m.SchedulerMock, newLocalizer(t), SigningSecret, UpcomingWeeks)

	return
}

// GetWebHandlerTest builds a page handler on a real scheduler frozen at Now
func GetWebHandlerTest(t *testing.T) *handlers.WebHandler {
	t.Helper()

	instance := service.NewInstance(clockwork.NewFakeClockAt(Now), time.Time{})
	handler, err := handlers.NewWebHandler(instance.Scheduler, instance.NewController, newLocalizer(t), PublicURL, UpcomingWeeks)
	require.NoError(t, err)

	return handler
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, channelName, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

// CreateFormRequest creates a form POST for one of the page actions
func CreateFormRequest(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
