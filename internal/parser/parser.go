// Package parser turns short free-text chat replies into per-weekday
// office statuses. The domain is closed (five weekday names, four status
// words), so extraction is deterministic and rule based; there is no
// language-model fallback.
package parser

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain"
	"github.com/diegoclair/slack-wfo-bot/internal/domain/entity"
	"github.com/diegoclair/slack-wfo-bot/internal/logger"
)

// ErrNoScheduleInfo is returned when a reply carries no recognizable day or
// status information. The caller must ask for clarification instead of
// persisting an empty schedule as a real answer.
var ErrNoScheduleInfo = errors.New("no recognizable schedule information in reply")

// QuestionContext describes what the user was asked, so that bare yes/no
// replies can be resolved to the day the question was about.
type QuestionContext struct {
	SingleDay  bool
	TargetDay  int                // ISO 8601 weekday the question asked about (1=Monday .. 5=Friday)
	WeekTarget time.Time          // Monday of the week the question applies to
	Attempt    entity.AttemptType // attempt type a reply to this question is logged under
}

// SingleDayQuestion builds the context for an "are you coming in
// tomorrow?" style question targeting the given date.
func SingleDayQuestion(target time.Time) *QuestionContext {
	weekday := int(target.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return &QuestionContext{
		SingleDay:  true,
		TargetDay:  weekday,
		WeekTarget: domain.WeekStart(target),
		Attempt:    entity.AttemptDailyEvening,
	}
}

// WeekQuestion builds the context for a full-week question about the week
// starting at weekTarget.
func WeekQuestion(weekTarget time.Time) *QuestionContext {
	return &QuestionContext{
		WeekTarget: weekTarget,
		Attempt:    entity.AttemptWeeklyFriday,
	}
}

// Config carries the recognized vocabulary. Day variants are keyed by ISO
// weekday number.
type Config struct {
	DayVariants  map[int][]string
	Affirmations []string
	Negations    []string
}

// DefaultConfig returns the built-in vocabulary.
func DefaultConfig() Config {
	return Config{
		DayVariants: map[int][]string{
			domain.Monday:    {"monday", "mondays", "mon"},
			domain.Tuesday:   {"tuesday", "tuesdays", "tues", "tue"},
			domain.Wednesday: {"wednesday", "wednesdays", "wed"},
			domain.Thursday:  {"thursday", "thursdays", "thurs", "thur", "thu"},
			domain.Friday:    {"friday", "fridays", "fri"},
		},
		Affirmations: []string{"yes", "yeah", "yep", "yup", "sure", "definitely", "ok", "okay"},
		Negations:    []string{"no", "nope", "nah", "not", "won't", "wont", "can't", "cant"},
	}
}

// Parser extracts a WeekSchedule from a raw reply.
type Parser struct {
	cfg         Config
	dayPatterns map[int]*regexp.Regexp
	rangeMarker *regexp.Regexp
	weekPhrase  *regexp.Regexp
	statuses    []statusPattern
	affirmation *regexp.Regexp
	negation    *regexp.Regexp
}

type statusPattern struct {
	status  entity.WeekdayStatus
	pattern *regexp.Regexp
}

// New builds a parser from the given vocabulary.
func New(cfg Config) *Parser {
	p := &Parser{
		cfg:         cfg,
		dayPatterns: make(map[int]*regexp.Regexp, len(cfg.DayVariants)),
		rangeMarker: regexp.MustCompile(`\bto\b|\bthrough\b|-`),
		weekPhrase:  regexp.MustCompile(`\b(all|whole|entire|full) week\b|\bevery ?day\b|\ball days\b`),
		affirmation: wordsPattern(cfg.Affirmations),
		negation:    wordsPattern(cfg.Negations),
	}

	for day, variants := range cfg.DayVariants {
		p.dayPatterns[day] = wordsPattern(variants)
	}

	// Checked in order; the first status whose keyword appears in a clause
	// wins for the days named in that clause.
	p.statuses = []statusPattern{
		{entity.StatusLeave, regexp.MustCompile(`\b(leave|off|vacation|holiday|absent|ooo)\b`)},
		{entity.StatusHome, regexp.MustCompile(`\b(wfh|home|remote|not coming)\b`)},
		{entity.StatusHybrid, regexp.MustCompile(`\b(hybrid|half day)\b`)},
		{entity.StatusOffice, regexp.MustCompile(`\b(office|wfo|coming in|be in|in)\b`)},
	}

	return p
}

func wordsPattern(words []string) *regexp.Regexp {
	escaped := make([]string, 0, len(words))
	for _, w := range words {
		escaped = append(escaped, regexp.QuoteMeta(w))
	}
	return regexp.MustCompile(`\b(` + strings.Join(escaped, "|") + `)\b`)
}

// Parse extracts the per-weekday statuses from text. Days the reply says
// nothing about remain unset. It returns ErrNoScheduleInfo when nothing at
// all could be resolved.
func (p *Parser) Parse(text string, qctx *QuestionContext) (entity.WeekSchedule, error) {
	var schedule entity.WeekSchedule

	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return schedule, ErrNoScheduleInfo
	}

	resolvedRange := p.parseRange(normalized, &schedule)

	if !resolvedRange {
		p.parseIndividualDays(normalized, &schedule)
	}

	if schedule.IsEmpty() && qctx != nil && qctx.SingleDay {
		p.resolveFromContext(normalized, qctx, &schedule)
	}

	p.parseWholeWeek(normalized, &schedule)

	if schedule.IsEmpty() {
		return schedule, ErrNoScheduleInfo
	}

	return schedule, nil
}

// parseRange handles "Monday to Wednesday" style replies. It reports
// whether a range resolved any days; a malformed range (end before start)
// falls back to individual detection instead of wrapping around.
func (p *Parser) parseRange(text string, schedule *entity.WeekSchedule) bool {
	if !p.rangeMarker.MatchString(text) {
		return false
	}

	type dayMatch struct {
		day int
		pos int
	}
	var found []dayMatch
	for _, day := range domain.Workdays {
		if loc := p.dayPatterns[day].FindStringIndex(text); loc != nil {
			found = append(found, dayMatch{day: day, pos: loc[0]})
		}
	}

	if len(found) != 2 {
		return false
	}

	start, end := found[0], found[1]
	if start.pos > end.pos {
		start, end = end, start
	}

	if end.day < start.day {
		logger.Log.Warnf("Malformed day range (%s before %s), falling back to individual day detection",
			domain.WeekdayNames[end.day], domain.WeekdayNames[start.day])
		return false
	}

	for day := start.day; day <= end.day; day++ {
		schedule.SetDay(day, entity.StatusOffice)
	}
	return true
}

// parseIndividualDays marks each mentioned day with the status implied by
// its clause; a day named with no status keyword nearby defaults to office.
func (p *Parser) parseIndividualDays(text string, schedule *entity.WeekSchedule) {
	for _, clause := range splitClauses(text) {
		status := p.clauseStatus(clause)
		for _, day := range domain.Workdays {
			if schedule.Day(day).IsSet() {
				continue
			}
			if p.dayPatterns[day].MatchString(clause) {
				schedule.SetDay(day, status)
			}
		}
	}
}

func splitClauses(text string) []string {
	replaced := strings.NewReplacer(" and ", ";", " but ", ";", ".", ";").Replace(text)
	parts := strings.Split(replaced, ";")
	clauses := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			clauses = append(clauses, part)
		}
	}
	return clauses
}

func (p *Parser) clauseStatus(clause string) entity.WeekdayStatus {
	for _, sp := range p.statuses {
		if sp.pattern.MatchString(clause) {
			return sp.status
		}
	}
	// A bare day mention ("monday, wednesday") is an office plan.
	return entity.StatusOffice
}

// resolveFromContext handles bare yes/no replies to a single-day question.
// Only consulted when no day names resolved anything.
func (p *Parser) resolveFromContext(text string, qctx *QuestionContext, schedule *entity.WeekSchedule) {
	if qctx.TargetDay < domain.Monday || qctx.TargetDay > domain.Friday {
		return
	}
	if p.negation.MatchString(text) {
		schedule.SetDay(qctx.TargetDay, entity.StatusHome)
		return
	}
	if p.affirmation.MatchString(text) {
		schedule.SetDay(qctx.TargetDay, entity.StatusOffice)
	}
}

// parseWholeWeek applies "all week" style phrases to every day the reply
// did not already resolve.
func (p *Parser) parseWholeWeek(text string, schedule *entity.WeekSchedule) {
	if !p.weekPhrase.MatchString(text) {
		return
	}

	status := entity.StatusOffice
	for _, sp := range p.statuses {
		if sp.status == entity.StatusOffice {
			break
		}
		if sp.pattern.MatchString(text) {
			status = sp.status
			break
		}
	}
	if status == entity.StatusOffice && p.negation.MatchString(text) {
		status = entity.StatusHome
	}

	for _, day := range domain.Workdays {
		if !schedule.Day(day).IsSet() {
			schedule.SetDay(day, status)
		}
	}
}
