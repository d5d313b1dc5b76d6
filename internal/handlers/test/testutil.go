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

	"github.com/diegoclair/slack-wfo-bot/internal/handlers"
	"github.com/diegoclair/slack-wfo-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	MinOfficeDays = 3
)

type ServiceMocks struct {
	CollectionServiceMock *mocks.MockCollectionService
	SlackClientMock       *mocks.MockSlackClient
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		CollectionServiceMock: mocks.NewMockCollectionService(ctrl),
		SlackClientMock:       mocks.NewMockSlackClient(ctrl),
	}

	handler = handlers.New(m.SlackClientMock, m.CollectionServiceMock, SigningSecret, MinOfficeDays)

	return
}

// CreateSlackCommandRequest creates a properly signed Slack slash command request
func CreateSlackCommandRequest(t *testing.T, command, text, userID string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"D123456789"},
		"channel_name": {"directmessage"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	return signedRequest(t, "/slack/commands", form.Encode(), "application/x-www-form-urlencoded")
}

// CreateSlackEventRequest creates a properly signed Events API request
func CreateSlackEventRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	return signedRequest(t, "/slack/events", body, "application/json")
}

func signedRequest(t *testing.T, path, body, contentType string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", contentType)

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(SigningSecret, timestamp, body))

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
