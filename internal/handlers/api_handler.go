package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/diegoclair/slack-wfo-bot/internal/parser"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// APIHandler exposes the collection pipeline over plain HTTP so that
// other internal systems can query and push schedules without going
// through the chat transport.
type APIHandler struct {
	collectionService contract.CollectionService
}

func NewAPI(collectionService contract.CollectionService) *APIHandler {
	return &APIHandler{collectionService: collectionService}
}

type errResponse struct {
	HTTPStatusCode int    `json:"-"`
	Error          string `json:"error"`
}

func (e *errResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errInvalidRequest(err error) render.Renderer {
	return &errResponse{HTTPStatusCode: http.StatusBadRequest, Error: err.Error()}
}

func errInternal(err error) render.Renderer {
	return &errResponse{HTTPStatusCode: http.StatusInternalServerError, Error: err.Error()}
}

// CheckCollection handles GET /api/availability/check/{userID}?week=YYYY-MM-DD.
// Without a week parameter it reports on the current week.
func (h *APIHandler) CheckCollection(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	weekStart, err := weekParam(r)
	if err != nil {
		render.Render(w, r, errInvalidRequest(err))
		return
	}

	check, err := h.collectionService.CheckCollectionNeeded(userID, weekStart)
	if err != nil {
		render.Render(w, r, errInternal(err))
		return
	}

	render.JSON(w, r, check)
}

type processRequest struct {
	UserID    string `json:"user_id"`
	Text      string `json:"text"`
	WeekStart string `json:"week_start,omitempty"`
	TargetDay string `json:"target_day,omitempty"`
}

func (p *processRequest) Bind(r *http.Request) error {
	if p.UserID == "" {
		return errMissingField("user_id")
	}
	if p.Text == "" {
		return errMissingField("text")
	}
	return nil
}

// ProcessReply handles POST /api/availability/process: run a free-text
// reply through extraction without committing anything. target_day makes
// the reply a single-day answer about that date; otherwise week_start (or
// the upcoming week) frames it as a whole-week answer.
func (h *APIHandler) ProcessReply(w http.ResponseWriter, r *http.Request) {
	req := &processRequest{}
	if err := render.Bind(r, req); err != nil {
		render.Render(w, r, errInvalidRequest(err))
		return
	}

	qctx, err := req.questionContext()
	if err != nil {
		render.Render(w, r, errInvalidRequest(err))
		return
	}

	result, err := h.collectionService.ProcessReply(req.UserID, req.Text, qctx)
	if err != nil {
		render.Render(w, r, errInternal(err))
		return
	}

	render.JSON(w, r, result)
}

type saveRequest struct {
	UserID    string              `json:"user_id"`
	WeekStart string              `json:"week_start"`
	Schedule  entity.WeekSchedule `json:"schedule"`
	Method    string              `json:"collection_method,omitempty"`
}

func (s *saveRequest) Bind(r *http.Request) error {
	if s.UserID == "" {
		return errMissingField("user_id")
	}
	if s.WeekStart == "" {
		return errMissingField("week_start")
	}
	return nil
}

// SaveSchedule handles POST /api/availability/save: commit a confirmed
// schedule for a user and week.
func (h *APIHandler) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	req := &saveRequest{}
	if err := render.Bind(r, req); err != nil {
		render.Render(w, r, errInvalidRequest(err))
		return
	}

	weekStart, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		render.Render(w, r, errInvalidRequest(err))
		return
	}

	method := entity.MethodWeekly
	if req.Method == string(entity.MethodDaily) {
		method = entity.MethodDaily
	}

	availability, err := h.collectionService.SaveConfirmedSchedule(
		r.Context(), req.UserID, domain.WeekStart(weekStart), req.Schedule, method)
	if err != nil {
		render.Render(w, r, errInternal(err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, availability)
}

// GetUserAvailability handles GET /api/availability/user/{userID}: all
// recorded weeks for a user, most recent first.
func (h *APIHandler) GetUserAvailability(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	availability, err := h.collectionService.GetAllAvailability(userID)
	if err != nil {
		render.Render(w, r, errInternal(err))
		return
	}

	if availability == nil {
		availability = []*entity.Availability{}
	}
	render.JSON(w, r, availability)
}

func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (p *processRequest) questionContext() (*parser.QuestionContext, error) {
	if p.TargetDay != "" {
		target, err := time.Parse("2006-01-02", p.TargetDay)
		if err != nil {
			return nil, err
		}
		return parser.SingleDayQuestion(target), nil
	}

	weekTarget := domain.NextWeekStart(time.Now())
	if p.WeekStart != "" {
		parsed, err := time.Parse("2006-01-02", p.WeekStart)
		if err != nil {
			return nil, err
		}
		weekTarget = domain.WeekStart(parsed)
	}
	return parser.WeekQuestion(weekTarget), nil
}

func errMissingField(name string) error {
	return fmt.Errorf("missing required field: %s", name)
}

func weekParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("week")
	if raw == "" {
		return domain.WeekStart(time.Now()), nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return domain.WeekStart(parsed), nil
}
