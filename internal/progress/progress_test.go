package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/habitflower/internal/model"
)

var pattern = [DaysPerWeek]int{0, 2, 3, 4, 1, 0, 3}

func pushUps() model.Habit {
	return model.Habit{ID: "push-ups", Title: "Push-ups", Kind: model.HabitKindCount, Target: 3, DaysPerWeek: 7, TimesPerDay: 3}
}

func gym() model.Habit {
	return model.Habit{ID: "gym", Title: "Hit the gym", Kind: model.HabitKindBoolean, DaysPerWeek: 3}
}

func TestDefaultPattern(t *testing.T) {
	assert.Equal(t, []int{0, 2, 3, 4, 1, 0, 3}, DefaultPattern(7))
	assert.Empty(t, DefaultPattern(-1))
	assert.Len(t, DefaultPattern(28), 28)
}

func TestNormalizeLevels(t *testing.T) {
	assert.Equal(t, pattern, NormalizeLevels(nil))
	assert.Equal(t, pattern, NormalizeLevels([]int{4, 4, 4}))
	assert.Equal(t, [DaysPerWeek]int{0, 4, 2, 0, 4, 1, 3}, NormalizeLevels([]int{-2, 9, 2, 0, 4, 1, 3, 4, 4}))
}

type failingSource struct{}

func (failingSource) Levels(context.Context, model.Habit, time.Time) ([]int, error) {
	return nil, errors.New("disk on fire")
}

func TestWeeklyLevelsFallsBackOnSourceError(t *testing.T) {
	levels, err := WeeklyLevels(context.Background(), failingSource{}, gym(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Equal(t, pattern, levels)

	levels, err = WeeklyLevels(context.Background(), nil, gym(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, pattern, levels)
}

func TestTodayFractionBoolean(t *testing.T) {
	st := model.NewInteractionState()
	_, ok := TodayFraction(gym(), st)
	assert.False(t, ok, "unchecked boolean habit must leave today unset")

	st.CheckedHabits["gym"] = true
	f, ok := TodayFraction(gym(), st)
	require.True(t, ok)
	assert.Equal(t, 1.0, f)
}

func TestTodayFractionCount(t *testing.T) {
	st := model.NewInteractionState()
	_, ok := TodayFraction(pushUps(), st)
	assert.False(t, ok)

	st.HabitCounts["push-ups"] = 2
	f, ok := TodayFraction(pushUps(), st)
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, f, 1e-9)

	st.HabitCounts["push-ups"] = 7
	f, _ = TodayFraction(pushUps(), st)
	assert.Equal(t, 1.0, f)

	noTarget := model.Habit{ID: "x", Title: "x", Kind: model.HabitKindCount, Target: -2}
	st.HabitCounts["x"] = 1
	f, ok = TodayFraction(noTarget, st)
	require.True(t, ok)
	assert.Equal(t, 1.0, f, "malformed target falls back to 1")
}

func TestPlantLevel(t *testing.T) {
	cases := []struct {
		name  string
		habit model.Habit
		want  float64
		label string
	}{
		{"boolean denominator one", gym(), 5, "5"},
		{"target three", pushUps(), 4, "4"},
		{"target four rounds half up", model.Habit{Target: 4}, 3.3, "3.3"},
		{"target five", model.Habit{Target: 5}, 2.6, "2.6"},
	}
	for _, tc := range cases {
		got := PlantLevel(pattern, tc.habit)
		assert.InDelta(t, tc.want, got, 1e-9, tc.name)
		assert.Equal(t, tc.label, PlantLevelLabel(got), tc.name)
	}
}

func TestCellOpacity(t *testing.T) {
	assert.Equal(t, 0.06, CellOpacity(0, false, 0, false, true))
	assert.Equal(t, 0.04, CellOpacity(0, false, 0, false, false))
	for lvl, want := range map[int]float64{1: 0.36, 2: 0.52, 3: 0.68, 4: 0.84} {
		assert.InDelta(t, want, CellOpacity(lvl, false, 0, false, true), 1e-9, "level %d", lvl)
	}
	assert.InDelta(t, 0.6, CellOpacity(2, true, 0.5, true, true), 1e-9)
	assert.InDelta(t, 1.0, CellOpacity(0, true, 1.7, true, false), 1e-9)
	assert.InDelta(t, 0.2, CellOpacity(4, true, -1, true, true), 1e-9)
	assert.InDelta(t, 0.52, CellOpacity(2, true, 0, false, true), 1e-9, "no live fraction keeps history level")
	assert.InDelta(t, 0.52, CellOpacity(2, false, 0.9, true, true), 1e-9, "fraction ignored off today")
}

func TestScheduleLabel(t *testing.T) {
	assert.Equal(t, []string{"3 days / week"}, ScheduleLabel(gym()))
	assert.Equal(t, []string{"7 days / week", "3x / day (all days)"}, ScheduleLabel(pushUps()))
	scales := model.Habit{Kind: model.HabitKindCount, Target: 3, DaysPerWeek: 5, TimesByDay: map[string]int{"Fri": 1, "Mon": 2, "Wed": 3}}
	assert.Equal(t, []string{"5 days / week", "Mon: 2x, Wed: 3x, Fri: 1x"}, ScheduleLabel(scales))
}

func TestSummarizePushUpsScenario(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC) // Wednesday
	st := model.NewInteractionState()
	st.HabitCounts["push-ups"] = 3

	sum, err := Summarize(context.Background(), PatternSource{}, pushUps(), st, now, true)
	require.NoError(t, err)
	assert.Equal(t, int(time.Wednesday), sum.TodayIndex)
	assert.True(t, sum.HasToday)
	assert.Equal(t, 1.0, sum.TodayFraction)
	assert.Equal(t, "4", sum.PlantLevelLabel)
	assert.InDelta(t, 1.0, sum.CellOpacity[sum.TodayIndex], 1e-9)
	assert.InDelta(t, 0.06, sum.CellOpacity[0], 1e-9)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 3, sum.Target)
}

func TestSummarizeTodo(t *testing.T) {
	todo := model.Todo{ID: "g", Title: "Grocery run", SubItems: []string{"Milk", "Eggs"}}
	st := model.NewInteractionState()
	st.SubItemChecked["g"] = map[string]bool{"Eggs": true}
	sum := SummarizeTodo(todo, st)
	assert.False(t, sum.IsDone)
	assert.Equal(t, map[string]bool{"Milk": false, "Eggs": true}, sum.SubItemStates)
}
