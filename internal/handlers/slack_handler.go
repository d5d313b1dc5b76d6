package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/diegoclair/slack-wfo-bot/internal/logger"
	slackcmd "github.com/diegoclair/slack-wfo-bot/internal/slack"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// pendingConfirmation holds an extracted schedule waiting for the user to
// say yes before it is committed.
type pendingConfirmation struct {
	schedule  entity.WeekSchedule
	weekStart time.Time
	method    entity.CollectionMethod
}

type SlackHandler struct {
	slackClient       contract.SlackClient
	collectionService contract.CollectionService
	signingSecret     string
	minOfficeDays     int

	mu      sync.Mutex
	pending map[string]pendingConfirmation // keyed by slack user ID
}

func New(slackClient contract.SlackClient, collectionService contract.CollectionService, signingSecret string, minOfficeDays int) *SlackHandler {
	return &SlackHandler{
		slackClient:       slackClient,
		collectionService: collectionService,
		signingSecret:     signingSecret,
		minOfficeDays:     minOfficeDays,
		pending:           make(map[string]pendingConfirmation),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleEvents receives Events API callbacks: URL verification and direct
// messages carrying the users' schedule replies.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, challenge.Challenge)

	case slackevents.CallbackEvent:
		if msg, isMessage := event.InnerEvent.Data.(*slackevents.MessageEvent); isMessage {
			h.handleMessageEvent(msg)
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

// handleMessageEvent runs a direct-message reply through the pipeline.
// Replies are confirmation based: the extracted schedule is only committed
// after the user agrees with what the bot understood.
func (h *SlackHandler) handleMessageEvent(msg *slackevents.MessageEvent) {
	if msg.BotID != "" || msg.ChannelType != "im" || msg.User == "" {
		return
	}

	reply, err := h.processUserMessage(msg.User, msg.Text)
	if err != nil {
		logger.Log.Errorf("Failed to process message from %s: %v", msg.User, err)
		reply = "Sorry, something went wrong on my side. Could you try that again?"
	}

	if reply == "" {
		return
	}

	if _, _, err := h.slackClient.PostMessage(msg.Channel, slack.MsgOptionText(reply, false)); err != nil {
		logger.Log.Errorf("Failed to send reply to %s: %v", msg.User, err)
	}
}

func (h *SlackHandler) processUserMessage(userID, text string) (string, error) {
	if pending, ok := h.takePending(userID, text); ok {
		return h.commitConfirmed(userID, pending)
	}

	qctx, err := h.collectionService.OpenQuestionContext(userID)
	if err != nil {
		return "", err
	}

	result, err := h.collectionService.ProcessReply(userID, text, qctx)
	if err != nil {
		return "", err
	}

	if !result.Extracted {
		return result.ConfirmationMessage, nil
	}

	h.setPending(userID, pendingConfirmation{
		schedule:  result.Schedule,
		weekStart: result.WeekStartDate,
		method:    result.CollectionMethod,
	})

	return result.ConfirmationMessage, nil
}

func (h *SlackHandler) commitConfirmed(userID string, pending pendingConfirmation) (string, error) {
	availability, err := h.collectionService.SaveConfirmedSchedule(
		context.Background(), userID, pending.weekStart, pending.schedule, pending.method)
	if err != nil {
		return "", err
	}

	if availability.IsCompliant {
		return fmt.Sprintf("Saved! %d office day(s) planned for the week of %s. You're all set. 🎉",
			availability.OfficeDaysCount, availability.WeekStartDate.Format("Jan 2")), nil
	}
	return fmt.Sprintf("Saved! %d office day(s) planned for the week of %s so far - the target is %d.",
		availability.OfficeDaysCount, availability.WeekStartDate.Format("Jan 2"), h.minOfficeDays), nil
}

// takePending pops the user's pending confirmation when the message is a
// plain yes; a plain no discards it. Any other message leaves nothing
// pending and is parsed as a fresh reply.
func (h *SlackHandler) takePending(userID, text string) (pendingConfirmation, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pending, ok := h.pending[userID]
	if !ok {
		return pendingConfirmation{}, false
	}
	delete(h.pending, userID)

	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "y", "yeah", "yep", "sure", "ok", "okay", "save", "confirm", "save it":
		return pending, true
	default:
		return pendingConfirmation{}, false
	}
}

func (h *SlackHandler) setPending(userID string, pending pendingConfirmation) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending[userID] = pending
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAddUser(cmd)
	case slackcmd.CmdRemove:
		return h.handleRemoveUser(cmd)
	case slackcmd.CmdList:
		return h.handleListUsers()
	case slackcmd.CmdStatus:
		return h.handleStatus(cmd, slashCmd)
	case slackcmd.CmdCheck:
		return h.handleCheck(cmd, slashCmd)
	case slackcmd.CmdPause:
		return h.handlePause(slashCmd)
	case slackcmd.CmdResume:
		return h.handleResume(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleAddUser(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/wfo add @user`")
	}

	var added []string
	for _, mention := range cmd.Args {
		userID := extractUserID(mention)
		if userID == "" {
			continue
		}
		if _, err := h.collectionService.EnrollEmployee(userID); err != nil {
			return h.createErrorResponse(fmt.Sprintf("Error enrolling user: %v", err))
		}
		added = append(added, fmt.Sprintf("<@%s>", userID))
	}

	if len(added) == 0 {
		return h.createErrorResponse("No valid user mention found: `/wfo add @user`")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s enrolled in office-day collection!", strings.Join(added, ", ")),
	}
}

func (h *SlackHandler) handleRemoveUser(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/wfo remove @user`")
	}

	userID := extractUserID(cmd.Args[0])
	if userID == "" {
		return h.createErrorResponse("No valid user mention found: `/wfo remove @user`")
	}

	if err := h.collectionService.RemoveEmployee(userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error removing user: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> removed from office-day collection.", userID),
	}
}

func (h *SlackHandler) handleListUsers() *slack.Msg {
	employees, err := h.collectionService.ListEmployees()
	if err != nil {
		return h.createErrorResponse("Error listing users")
	}

	if len(employees) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No users enrolled yet. Use `/wfo add @user` to enroll someone!",
		}
	}

	var sb strings.Builder
	sb.WriteString("*Enrolled users:*\n")
	for _, employee := range employees {
		fmt.Fprintf(&sb, "• <@%s>\n", employee.SlackUserID)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleStatus(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	userID := slashCmd.UserID
	if len(cmd.Args) > 0 {
		if mentioned := extractUserID(cmd.Args[0]); mentioned != "" {
			userID = mentioned
		}
	}

	weekStart := domain.WeekStart(time.Now())
	availability, err := h.collectionService.GetAvailability(userID, weekStart)
	if err != nil {
		return h.createErrorResponse("Error retrieving status")
	}

	if availability == nil {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No office plan recorded for <@%s> for the week of %s yet.", userID, weekStart.Format("Jan 2")),
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         formatAvailability(userID, availability),
	}
}

func (h *SlackHandler) handleCheck(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	userID := slashCmd.UserID
	if len(cmd.Args) > 0 {
		if mentioned := extractUserID(cmd.Args[0]); mentioned != "" {
			userID = mentioned
		}
	}

	check, err := h.collectionService.CheckCollectionNeeded(userID, domain.WeekStart(time.Now()))
	if err != nil {
		return h.createErrorResponse("Error checking collection status")
	}

	verdict := "No further prompts needed."
	if check.CollectionNeeded {
		verdict = "More collection needed."
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("*<@%s>*: %s\n%s (attempts used: %d)",
			userID, verdict, check.Reason, check.AttemptCount),
	}
}

func (h *SlackHandler) handlePause(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.collectionService.RemoveEmployee(slashCmd.UserID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error pausing collection: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "⏸️ Office-day prompts paused. Use `/wfo resume` to opt back in.",
	}
}

func (h *SlackHandler) handleResume(slashCmd *slack.SlashCommand) *slack.Msg {
	if _, err := h.collectionService.EnrollEmployee(slashCmd.UserID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error resuming collection: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "▶️ Office-day prompts resumed. Welcome back!",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.createErrorResponse(message))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}

// extractUserID turns a Slack mention like <@U12345|name> into U12345.
func extractUserID(mention string) string {
	userID := strings.TrimSpace(mention)
	if !strings.HasPrefix(userID, "<@") {
		return ""
	}
	userID = strings.TrimPrefix(userID, "<@")
	userID = strings.TrimSuffix(userID, ">")
	if idx := strings.Index(userID, "|"); idx >= 0 {
		userID = userID[:idx]
	}
	return userID
}

func formatAvailability(userID string, availability *entity.Availability) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*Office plan for <@%s>, week of %s:*\n", userID, availability.WeekStartDate.Format("Jan 2"))
	for _, day := range domain.Workdays {
		status := availability.Schedule.Day(day)
		label := "–"
		if status.IsSet() {
			label = string(status)
		}
		fmt.Fprintf(&sb, "• %s: %s\n", domain.WeekdayNames[day], label)
	}
	fmt.Fprintf(&sb, "Office days: %d | Compliant: %t", availability.OfficeDaysCount, availability.IsCompliant)
	return sb.String()
}
