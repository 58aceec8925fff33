package schedule

import (
	"github.com/robfig/cron/v3"

	"weather-planner/internal/domain/gateway/session"
	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
)

type SessionScheduler struct {
	cron    *cron.Cron
	gateway session.Gateway
}

func NewSessionScheduler(gateway session.Gateway) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), gateway: gateway}
}

// InitSessionScheduleTasks schedules the idle session sweep
func (scheduler *SessionScheduler) InitSessionScheduleTasks(cronExpression string) {
	_, err := scheduler.cron.AddFunc(cronExpression, scheduler.SweepIdleSessions)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

func (scheduler *SessionScheduler) SweepIdleSessions() {
	removed := scheduler.gateway.Sweep()
	if removed > 0 {
		log.Info(msg.GetMessage("session.swept", removed, scheduler.gateway.Count()))
	}
}

func (scheduler *SessionScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}
