package state

import "github.com/letihelper/schedule_bot/internal/model"

// Step шаг диалога, которого ждёт бот от пользователя
type Step string

const (
	StepNone             Step = ""
	StepAwaitingWeekType Step = "awaiting_week_type"
	StepAwaitingDay      Step = "awaiting_day"
	StepAwaitingGroup    Step = "awaiting_group"
)

// Action действие, выбранное пользователем в главном меню
type Action string

const (
	ActionNearLesson Action = "near_lesson"
	ActionTomorrow   Action = "tomorrow"
	ActionDay        Action = "day"
	ActionWeek       Action = "week"
)

// Dialog состояние незавершённого диалога одного чата.
// Поля заполняются по мере прохождения шагов; после вызова резолвера
// запись удаляется целиком.
type Dialog struct {
	Step       Step
	Action     Action
	WeekParity model.WeekParity
	Day        string // токен дня недели: monday ... saturday
}
