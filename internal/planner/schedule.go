package planner

import (
	"time"

	"task-planner/internal/model"
	"task-planner/pkg/datemath"
)

// BlockType distinguishes work intervals from rest intervals.
type BlockType string

const (
	BlockWork  BlockType = "work"
	BlockBreak BlockType = "break"
)

// ScheduleBlock is a half-open [Start, End) interval. Work blocks reference
// the task they consume minutes from; break blocks leave the task fields empty.
type ScheduleBlock struct {
	Type     BlockType
	TaskID   string
	Title    string
	Category model.Category
	Start    time.Time
	End      time.Time
}

// Duration returns End - Start.
func (b ScheduleBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Policy selects how a schedule terminates.
type Policy string

const (
	// PolicyBounded stops after MaxDays days or MaxDays*BlocksPerDay work blocks.
	PolicyBounded Policy = "bounded"
	// PolicyCapacity spills across as many days as needed, DailyCapacityMinutes per day.
	PolicyCapacity Policy = "capacity"
)

// ScheduleConfig configures a Scheduler.
type ScheduleConfig struct {
	Policy               Policy
	WorkBlockMinutes     int
	BreakBlockMinutes    int
	DayStartHour         int
	MaxDays              int // bounded only
	BlocksPerDay         int // bounded only
	DailyCapacityMinutes int // required for capacity; optional ceiling for bounded
	Source               EstimateSource
	BreakAfterEveryBlock bool // false inserts breaks only between blocks of the same task
}

// RoadmapConfig is the short-horizon view: four days of four 30-minute blocks,
// sized by Soft-PERT expected minutes.
func RoadmapConfig() ScheduleConfig {
	return ScheduleConfig{
		Policy:               PolicyBounded,
		WorkBlockMinutes:     30,
		BreakBlockMinutes:    10,
		DayStartHour:         10,
		MaxDays:              4,
		BlocksPerDay:         4,
		Source:               SourcePERT,
		BreakAfterEveryBlock: true,
	}
}

// FullScheduleConfig is the complete view: 50-minute blocks, 240 minutes a day.
func FullScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		Policy:               PolicyCapacity,
		WorkBlockMinutes:     50,
		BreakBlockMinutes:    10,
		DayStartHour:         9,
		DailyCapacityMinutes: 240,
		Source:               SourceHeuristic,
	}
}

// withDefaults repairs out-of-range values so every schedule terminates.
func (c ScheduleConfig) withDefaults() ScheduleConfig {
	if c.Policy != PolicyBounded {
		c.Policy = PolicyCapacity
	}
	if c.WorkBlockMinutes <= 0 {
		c.WorkBlockMinutes = 30
	}
	if c.BreakBlockMinutes < 0 {
		c.BreakBlockMinutes = 0
	}
	if c.DayStartHour < 0 || c.DayStartHour > 23 {
		c.DayStartHour = 9
	}
	if c.Policy == PolicyCapacity && c.DailyCapacityMinutes <= 0 {
		c.DailyCapacityMinutes = 240
	}
	if c.DailyCapacityMinutes > 0 && c.WorkBlockMinutes > c.DailyCapacityMinutes {
		c.WorkBlockMinutes = c.DailyCapacityMinutes
	}
	if c.MaxDays <= 0 {
		c.MaxDays = 1
	}
	if c.BlocksPerDay <= 0 {
		c.BlocksPerDay = 1
	}
	if c.Source != SourcePERT {
		c.Source = SourceHeuristic
	}
	return c
}

// Scheduler lays ranked tasks out into work and break blocks.
type Scheduler interface {
	Build(ranked []model.Task, now time.Time) []ScheduleBlock
	Config() ScheduleConfig
}

// NewScheduler returns the strategy named by cfg.Policy.
func NewScheduler(est *Estimator, dates *datemath.Parser, cfg ScheduleConfig) Scheduler {
	cfg = cfg.withDefaults()
	if cfg.Policy == PolicyBounded {
		return &boundedScheduler{est: est, dates: dates, cfg: cfg}
	}
	return &capacityScheduler{est: est, dates: dates, cfg: cfg}
}

type capacityScheduler struct {
	est   *Estimator
	dates *datemath.Parser
	cfg   ScheduleConfig
}

func (s *capacityScheduler) Config() ScheduleConfig { return s.cfg }

func (s *capacityScheduler) Build(ranked []model.Task, now time.Time) []ScheduleBlock {
	cur := newDayCursor(s.dates, now, s.cfg)
	var blocks []ScheduleBlock

	for _, t := range ranked {
		remaining := s.est.Required(t, now, s.cfg.Source)
		for remaining > 0 {
			if !cur.fits(cur.work) {
				cur.nextDay()
			}
			blocks, remaining = cur.carve(blocks, t, remaining)
		}
	}
	return blocks
}

type boundedScheduler struct {
	est   *Estimator
	dates *datemath.Parser
	cfg   ScheduleConfig
}

func (s *boundedScheduler) Config() ScheduleConfig { return s.cfg }

func (s *boundedScheduler) Build(ranked []model.Task, now time.Time) []ScheduleBlock {
	cur := newDayCursor(s.dates, now, s.cfg)
	var blocks []ScheduleBlock

	for _, t := range ranked {
		remaining := s.est.Required(t, now, s.cfg.Source)
		for remaining > 0 {
			if cur.blocks >= s.cfg.BlocksPerDay || !cur.fits(cur.work) {
				if cur.dayIndex+1 >= s.cfg.MaxDays {
					return blocks
				}
				cur.nextDay()
			}
			blocks, remaining = cur.carve(blocks, t, remaining)
		}
	}
	return blocks
}

// dayCursor tracks the position inside the current working day.
type dayCursor struct {
	dates     *datemath.Parser
	cfg       ScheduleConfig
	work      time.Duration
	pause     time.Duration
	capacity  time.Duration // 0 = unlimited
	day       time.Time
	dayEnd    time.Time // midnight closing the current day
	at        time.Time
	remaining time.Duration
	blocks    int
	dayIndex  int
}

func newDayCursor(dates *datemath.Parser, now time.Time, cfg ScheduleConfig) *dayCursor {
	c := &dayCursor{
		dates:    dates,
		cfg:      cfg,
		work:     time.Duration(cfg.WorkBlockMinutes) * time.Minute,
		pause:    time.Duration(cfg.BreakBlockMinutes) * time.Minute,
		capacity: time.Duration(cfg.DailyCapacityMinutes) * time.Minute,
		day:      dates.StartOfDay(now),
	}
	c.dayEnd = dates.StartOfDay(c.day.AddDate(0, 0, 1))
	c.at = dates.AtHour(c.day, cfg.DayStartHour)
	if c.at.Before(now) {
		c.at = now
	}
	c.remaining = c.capacity
	return c
}

// fits reports whether d fits both the remaining capacity and the current
// calendar day. A late first day is cut off at midnight.
func (c *dayCursor) fits(d time.Duration) bool {
	if c.at.Add(d).After(c.dayEnd) {
		return false
	}
	return c.capacity == 0 || c.remaining >= d
}

// nextDay moves to the start of the following working day. A day whose start
// the cursor has already passed is skipped so blocks never overlap.
func (c *dayCursor) nextDay() {
	prev := c.at
	for {
		c.day = c.dates.StartOfDay(c.day.AddDate(0, 0, 1))
		c.at = c.dates.AtHour(c.day, c.cfg.DayStartHour)
		if !c.at.Before(prev) {
			break
		}
		c.dayIndex++
	}
	c.dayEnd = c.dates.StartOfDay(c.day.AddDate(0, 0, 1))
	c.remaining = c.capacity
	c.blocks = 0
	c.dayIndex++
}

func (c *dayCursor) advance(d time.Duration) {
	c.at = c.at.Add(d)
	if c.capacity > 0 {
		c.remaining -= d
	}
}

// carve emits one work block for t (plus a trailing break when allowed) and
// returns the task's remaining requirement.
func (c *dayCursor) carve(blocks []ScheduleBlock, t model.Task, remaining time.Duration) ([]ScheduleBlock, time.Duration) {
	span := min(c.work, remaining)
	blocks = append(blocks, ScheduleBlock{
		Type:     BlockWork,
		TaskID:   t.ID,
		Title:    t.Title,
		Category: t.Category,
		Start:    c.at,
		End:      c.at.Add(span),
	})
	c.advance(span)
	c.blocks++
	remaining -= span

	if c.pause > 0 && (remaining > 0 || c.cfg.BreakAfterEveryBlock) && c.fits(c.pause) {
		blocks = append(blocks, ScheduleBlock{Type: BlockBreak, Start: c.at, End: c.at.Add(c.pause)})
		c.advance(c.pause)
	}
	return blocks, remaining
}
