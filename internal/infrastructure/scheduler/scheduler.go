package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
)

// WeeklySpec is a day-of-week plus wall clock time in the scheduler location.
type WeeklySpec struct {
	Weekday time.Weekday
	Hour    int
	Minute  int
}

func (s WeeklySpec) String() string {
	return fmt.Sprintf("%s %02d:%02d", strings.ToLower(s.Weekday.String()), s.Hour, s.Minute)
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// ParseWeeklySpec reads values such as "monday 03:00".
func ParseWeeklySpec(raw string) (WeeklySpec, error) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) != 2 {
		return WeeklySpec{}, fmt.Errorf("weekly schedule %q must look like \"monday 03:00\"", raw)
	}

	day, ok := weekdays[fields[0]]
	if !ok {
		return WeeklySpec{}, fmt.Errorf("weekly schedule %q has unknown weekday %q", raw, fields[0])
	}

	hourRaw, minuteRaw, found := strings.Cut(fields[1], ":")
	if !found {
		return WeeklySpec{}, fmt.Errorf("weekly schedule %q time must be HH:MM", raw)
	}
	hour, err := strconv.Atoi(hourRaw)
	if err != nil || hour < 0 || hour > 23 {
		return WeeklySpec{}, fmt.Errorf("weekly schedule %q hour must be 0-23", raw)
	}
	minute, err := strconv.Atoi(minuteRaw)
	if err != nil || minute < 0 || minute > 59 {
		return WeeklySpec{}, fmt.Errorf("weekly schedule %q minute must be 0-59", raw)
	}

	return WeeklySpec{Weekday: day, Hour: hour, Minute: minute}, nil
}

// Job is one weekly task. Run receives the scheduler's context, cancelled on Stop.
type Job struct {
	Name string
	Spec WeeklySpec
	Run  func(ctx context.Context) error
}

// Scheduler runs weekly jobs in singleton mode: a run that is still going when its
// next slot arrives pushes that slot back instead of overlapping.
type Scheduler struct {
	s      gocron.Scheduler
	logger *logging.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func New(location *time.Location, logger *logging.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if location == nil {
		location = time.UTC
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(location))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		s:      s,
		logger: logger.With("component", "scheduler"),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

func (s *Scheduler) Register(job Job) error {
	if strings.TrimSpace(job.Name) == "" {
		return fmt.Errorf("scheduled job name is required")
	}
	if job.Run == nil {
		return fmt.Errorf("scheduled job %s has no run function", job.Name)
	}

	_, err := s.s.NewJob(
		gocron.WeeklyJob(1,
			gocron.NewWeekdays(job.Spec.Weekday),
			gocron.NewAtTimes(gocron.NewAtTime(uint(job.Spec.Hour), uint(job.Spec.Minute), 0)),
		),
		gocron.NewTask(s.run, job),
		gocron.WithName(job.Name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("create scheduled job %s: %w", job.Name, err)
	}

	s.logger.Info("scheduled job registered", "job", job.Name, "spec", job.Spec.String())
	return nil
}

func (s *Scheduler) Start() {
	s.s.Start()
}

func (s *Scheduler) Stop() error {
	s.cancel()
	if err := s.s.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	return nil
}

// JobNames lists registered job names, sorted.
func (s *Scheduler) JobNames() []string {
	jobs := s.s.Jobs()
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Name())
	}
	sort.Strings(out)
	return out
}

func (s *Scheduler) run(job Job) {
	start := time.Now()
	s.logger.InfoContext(s.ctx, "scheduled job started", "job", job.Name)
	if err := job.Run(s.ctx); err != nil {
		s.logger.ErrorContext(s.ctx, "scheduled job failed", "job", job.Name, "duration", time.Since(start), "error", err)
		return
	}
	s.logger.InfoContext(s.ctx, "scheduled job finished", "job", job.Name, "duration", time.Since(start))
}
