package service

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zigbotdev/zigbot/internal/domain"
)

// JobState describes where a dailyJob is in its schedule cycle
type JobState int32

const (
	JobIdle JobState = iota
	JobAwaitingTarget
	JobRunning
	JobRetryScheduled
	JobCancelled
)

func (s JobState) String() string {
	switch s {
	case JobIdle:
		return "idle"
	case JobAwaitingTarget:
		return "awaiting_target"
	case JobRunning:
		return "running"
	case JobRetryScheduled:
		return "retry_scheduled"
	case JobCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Clock abstracts time so job scheduling is testable
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// Timer is the channel-bearing half of a Clock
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTimer(d time.Duration) Timer { return realTimer{time.NewTimer(d)} }

type realTimer struct{ t *time.Timer }

func (rt realTimer) C() <-chan time.Time { return rt.t.C }

func (rt realTimer) Stop() bool { return rt.t.Stop() }

// dailyJob runs a callback once a day at the notification time in loc.
// The first check happens shortly after Start so a bot restarted after
// the target time still runs that day's job. A timer that wakes before
// the target reschedules itself, giving up on the day after too many
// early wakes. Force runs the callback immediately with forced=true and
// never disturbs the schedule.
type dailyJob struct {
	name    string
	run     func(now time.Time, forced bool)
	clock   Clock
	loc     *time.Location
	log     *logrus.Entry

	state    atomic.Int32
	attempts int
	forceCh  chan struct{}
	stopCh   chan struct{}
	running  bool
}

func newDailyJob(name string, loc *time.Location, clock Clock, log *logrus.Logger, run func(now time.Time, forced bool)) *dailyJob {
	return &dailyJob{
		name:    name,
		run:     run,
		clock:   clock,
		loc:     loc,
		log:     log.WithField("job", name),
		forceCh: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}
}

// State reports the job's current position in its cycle
func (j *dailyJob) State() JobState {
	return JobState(j.state.Load())
}

func (j *dailyJob) setState(s JobState) {
	j.state.Store(int32(s))
}

func (j *dailyJob) Start() {
	if j.running {
		return
	}
	j.running = true
	j.setState(JobAwaitingTarget)
	j.log.Info("daily job starting")
	go j.mainLoop()
}

func (j *dailyJob) Stop() {
	if !j.running {
		return
	}
	j.log.Info("daily job stopping")
	close(j.stopCh)
	j.running = false
}

// Force triggers an immediate run outside the schedule. Non-blocking;
// a force already pending is enough.
func (j *dailyJob) Force() {
	select {
	case j.forceCh <- struct{}{}:
	default:
	}
}

func (j *dailyJob) mainLoop() {
	timer := j.clock.NewTimer(domain.InitialCheckDelay)
	for {
		select {
		case <-timer.C():
			timer = j.fire(j.clock.Now())

		case <-j.forceCh:
			prev := j.State()
			j.setState(JobRunning)
			j.log.Info("forced run")
			j.run(j.clock.Now(), true)
			j.setState(prev)

		case <-j.stopCh:
			timer.Stop()
			j.setState(JobCancelled)
			return
		}
	}
}

// fire runs the job if the target time has arrived, otherwise schedules
// a retry. Returns the timer for the next wake-up.
func (j *dailyJob) fire(now time.Time) Timer {
	target := j.targetFor(now)

	if now.Before(target) {
		j.attempts++
		if j.attempts > domain.MaxEarlyFireAttempts {
			j.log.WithFields(logrus.Fields{
				"attempts": j.attempts - 1,
				"target":   target,
			}).Error("woke early too many times, skipping to tomorrow")
			j.attempts = 0
			j.setState(JobAwaitingTarget)
			return j.clock.NewTimer(target.AddDate(0, 0, 1).Sub(now))
		}

		delay := target.Sub(now)
		if delay < domain.MinEarlyRetryDelay {
			delay = domain.MinEarlyRetryDelay
		}
		j.setState(JobRetryScheduled)
		j.log.WithFields(logrus.Fields{
			"attempt": j.attempts,
			"delay":   delay.String(),
		}).Warn("woke before target, retrying")
		return j.clock.NewTimer(delay)
	}

	j.attempts = 0
	j.setState(JobRunning)
	j.run(now, false)
	j.setState(JobAwaitingTarget)

	next := j.nextAfter(now)
	j.log.WithField("next_in", next.String()).Info("run complete")
	return j.clock.NewTimer(next)
}

// targetFor returns the notification time on now's calendar day in the
// job's location
func (j *dailyJob) targetFor(now time.Time) time.Time {
	local := now.In(j.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), domain.NotifyHour, domain.NotifyMinute, 0, 0, j.loc)
}

// nextAfter returns the delay from now until tomorrow's target
func (j *dailyJob) nextAfter(now time.Time) time.Duration {
	return j.targetFor(now).AddDate(0, 0, 1).Sub(now)
}
