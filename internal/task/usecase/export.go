package usecase

import (
	"context"
	"fmt"
	"time"

	"task-planner/internal/planner"
	"task-planner/internal/task"
	"task-planner/pkg/gcalendar"
)

// ExportSchedule creates one calendar event per work block. Blocks already
// exported under the same key are skipped; individual failures are counted.
func (uc *implUseCase) ExportSchedule(ctx context.Context, input task.ScheduleInput) (task.ExportOutput, error) {
	if uc.calendar == nil {
		return task.ExportOutput{}, task.ErrCalendarUnavailable
	}

	sched, err := uc.Schedule(ctx, input)
	if err != nil {
		return task.ExportOutput{}, err
	}

	var work []planner.ScheduleBlock
	for _, b := range sched.Blocks {
		if b.Type == planner.BlockWork {
			work = append(work, b)
		}
	}
	if len(work) == 0 {
		return task.ExportOutput{Created: []task.ExportedBlock{}}, nil
	}

	existing := uc.exportedKeys(ctx, work[0].Start, work[len(work)-1].End)
	tz := uc.engine.Dates().Location().String()

	out := task.ExportOutput{Created: make([]task.ExportedBlock, 0, len(work))}
	for _, b := range work {
		key := blockKey(b)
		if _, ok := existing[key]; ok {
			out.Skipped++
			continue
		}

		ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     b.Title,
			Description: fmt.Sprintf("%s work block (%d min)", b.Category, int(b.Duration()/time.Minute)),
			StartTime:   b.Start,
			EndTime:     b.End,
			Timezone:    tz,
			BlockKey:    key,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.ExportSchedule: create event for %s: %v", key, err)
			out.Failed++
			continue
		}
		existing[key] = struct{}{}
		out.Created = append(out.Created, task.ExportedBlock{
			TaskID:  b.TaskID,
			Title:   b.Title,
			Start:   b.Start,
			End:     b.End,
			EventID: ev.ID,
			Link:    ev.HtmlLink,
		})
	}

	uc.l.Infof(ctx, "uc.ExportSchedule: created=%d skipped=%d failed=%d", len(out.Created), out.Skipped, out.Failed)
	return out, nil
}

// exportedKeys lists block keys already on the calendar in [from, to]. A
// listing failure disables deduplication for this run.
func (uc *implUseCase) exportedKeys(ctx context.Context, from, to time.Time) map[string]struct{} {
	keys := make(map[string]struct{})
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    from,
		TimeMax:    to,
		OnlyBlocks: true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.ExportSchedule: list existing events: %v", err)
		return keys
	}
	for _, ev := range events {
		if ev.BlockKey != "" {
			keys[ev.BlockKey] = struct{}{}
		}
	}
	return keys
}

func blockKey(b planner.ScheduleBlock) string {
	return b.TaskID + "@" + b.Start.UTC().Format(time.RFC3339)
}
