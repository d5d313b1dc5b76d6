package scheduler

import (
	"time"

	"github.com/diegoclair/slack-wfo-bot/internal/domain/contract"
	"github.com/diegoclair/slack-wfo-bot/internal/logger"
	"github.com/robfig/cron/v3"
)

// Runner ties the collection passes to wall-clock cron schedules. The
// passes themselves are idempotent, so an overlapping or repeated firing
// only costs a few queries.
type Runner struct {
	cronEngine       *cron.Cron
	schedulerService contract.SchedulerService

	weeklyKickoffSpec string
	dailyFollowupSpec string
	sweepSpec         string
}

func NewRunner(schedulerService contract.SchedulerService, weeklyKickoffSpec, dailyFollowupSpec, sweepSpec string) *Runner {
	return &Runner{
		cronEngine:        cron.New(cron.WithLocation(time.Local)),
		schedulerService:  schedulerService,
		weeklyKickoffSpec: weeklyKickoffSpec,
		dailyFollowupSpec: dailyFollowupSpec,
		sweepSpec:         sweepSpec,
	}
}

func (r *Runner) Start() error {
	if _, err := r.cronEngine.AddFunc(r.weeklyKickoffSpec, func() {
		logger.Log.Info("Running weekly kickoff pass")
		if err := r.schedulerService.ScheduleWeeklyKickoffs(time.Now()); err != nil {
			logger.Log.Errorf("Weekly kickoff pass failed: %v", err)
		}
	}); err != nil {
		return err
	}

	if _, err := r.cronEngine.AddFunc(r.dailyFollowupSpec, func() {
		logger.Log.Info("Running daily followup pass")
		if err := r.schedulerService.ScheduleDailyFollowups(time.Now()); err != nil {
			logger.Log.Errorf("Daily followup pass failed: %v", err)
		}
	}); err != nil {
		return err
	}

	if _, err := r.cronEngine.AddFunc(r.sweepSpec, func() {
		if err := r.schedulerService.Sweep(time.Now()); err != nil {
			logger.Log.Errorf("Message sweep failed: %v", err)
		}
	}); err != nil {
		return err
	}

	r.cronEngine.Start()
	logger.Log.Infof("Scheduler started: kickoff %q, followup %q, sweep %q",
		r.weeklyKickoffSpec, r.dailyFollowupSpec, r.sweepSpec)
	return nil
}

// Stop halts the cron engine and waits for in-flight jobs to finish.
func (r *Runner) Stop() {
	ctx := r.cronEngine.Stop()
	<-ctx.Done()
	logger.Log.Info("Scheduler stopped")
}
