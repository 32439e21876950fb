package progress

import (
	"context"
	"time"

	"github.com/sandeepkv93/habitflower/internal/model"
)

// HabitSummary is everything the render layer needs to paint one habit card.
type HabitSummary struct {
	HabitID         string
	Title           string
	Kind            model.HabitKind
	Count           int
	Target          int
	Checked         bool
	WeeklyLevels    [DaysPerWeek]int
	TodayIndex      int
	TodayFraction   float64
	HasToday        bool
	PlantLevel      float64
	PlantLevelLabel string
	CellOpacity     [DaysPerWeek]float64
	Schedule        []string
}

type TodoSummary struct {
	TodoID        string
	Title         string
	IsDone        bool
	SubItemStates map[string]bool
}

// Summarize derives one habit's display values. A history failure is returned
// alongside a summary built from the default pattern.
func Summarize(ctx context.Context, src HistorySource, h model.Habit, st model.InteractionState, now time.Time, isLight bool) (HabitSummary, error) {
	levels, err := WeeklyLevels(ctx, src, h, now)
	fraction, has := TodayFraction(h, st)
	today := int(now.Weekday())

	var opacity [DaysPerWeek]float64
	for i, lvl := range levels {
		opacity[i] = CellOpacity(lvl, i == today, fraction, has, isLight)
	}
	plant := PlantLevel(levels, h)
	return HabitSummary{
		HabitID:         h.ID,
		Title:           h.Title,
		Kind:            h.Kind,
		Count:           st.HabitCount(h.ID),
		Target:          h.EffectiveTarget(),
		Checked:         st.HabitChecked(h.ID),
		WeeklyLevels:    levels,
		TodayIndex:      today,
		TodayFraction:   fraction,
		HasToday:        has,
		PlantLevel:      plant,
		PlantLevelLabel: PlantLevelLabel(plant),
		CellOpacity:     opacity,
		Schedule:        ScheduleLabel(h),
	}, err
}

func SummarizeTodo(t model.Todo, st model.InteractionState) TodoSummary {
	states := make(map[string]bool, len(t.SubItems))
	for _, item := range t.SubItems {
		states[item] = st.SubItemDone(t.ID, item)
	}
	return TodoSummary{
		TodoID:        t.ID,
		Title:         t.Title,
		IsDone:        st.TodoChecked(t.ID),
		SubItemStates: states,
	}
}
