package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/sandeepkv93/habitflower/internal/model"
)

const (
	emptyOpacityLight = 0.06
	emptyOpacityDark  = 0.04
	levelBaseOpacity  = 0.2
	levelStepOpacity  = 0.16
	todaySpanOpacity  = 0.8
)

// TodayFraction reports live progress for today. ok is false until the user has
// made progress, so the cell keeps its history level instead of a forced zero.
func TodayFraction(h model.Habit, st model.InteractionState) (fraction float64, ok bool) {
	if !h.IsCount() {
		if st.HabitChecked(h.ID) {
			return 1, true
		}
		return 0, false
	}
	cur := st.HabitCount(h.ID)
	target := h.EffectiveTarget()
	if target > 0 && cur > 0 {
		return math.Min(1, float64(cur)/float64(target)), true
	}
	return 0, false
}

// PlantLevel is the cumulative weekly score: each day contributes at most 1.
// It is a motivational number, not a percentage, and may exceed 1.
func PlantLevel(levels [DaysPerWeek]int, h model.Habit) float64 {
	denom := float64(h.EffectiveTarget())
	sum := 0.0
	for _, lvl := range levels {
		sum += math.Min(1, float64(clampLevel(lvl))/denom)
	}
	return math.Round(sum*10) / 10
}

// PlantLevelLabel prints whole scores without a decimal point.
func PlantLevelLabel(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// CellOpacity maps a strip cell to the tint opacity it is painted with. A live
// fraction on today's cell overrides the history level.
func CellOpacity(level int, isToday bool, fraction float64, hasFraction bool, isLight bool) float64 {
	if isToday && hasFraction {
		f := math.Max(0, math.Min(1, fraction))
		return levelBaseOpacity + f*todaySpanOpacity
	}
	level = clampLevel(level)
	if level == 0 {
		if isLight {
			return emptyOpacityLight
		}
		return emptyOpacityDark
	}
	return levelBaseOpacity + float64(level)*levelStepOpacity
}

// ScheduleLabel describes the habit cadence in the card subtitle.
func ScheduleLabel(h model.Habit) []string {
	days := fmt.Sprintf("%d days / week", h.DaysPerWeek)
	if !h.IsCount() {
		return []string{days}
	}
	if len(h.TimesByDay) > 0 {
		return []string{days, FormatTimesByDay(h.TimesByDay)}
	}
	per := h.TimesPerDay
	if per <= 0 {
		per = h.EffectiveTarget()
	}
	return []string{days, fmt.Sprintf("%dx / day (all days)", per)}
}

// FormatTimesByDay renders overrides in Mon..Sun order, e.g. "Mon: 2x, Fri: 1x".
func FormatTimesByDay(byDay map[string]int) string {
	if len(byDay) == 0 {
		return ""
	}
	parts := make([]string, 0, len(byDay))
	for _, key := range model.WeekdayKeys {
		if n, ok := byDay[key]; ok {
			parts = append(parts, fmt.Sprintf("%s: %dx", key, n))
		}
	}
	return strings.Join(parts, ", ")
}
