package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/letihelper/schedule_bot/internal/client"
	"github.com/letihelper/schedule_bot/internal/model"
	"go.uber.org/zap"
)

// ScheduleService отвечает на запросы расписания.
// Расписание группы загружается один раз и кэшируется на всё время жизни
// процесса. Кэш сознательно не протухает, в том числе при смене чётности
// недели: данные провайдера в течение семестра стабильны.
//
// Все методы запросов возвращают готовый текст для пользователя. Ошибка
// возвращается только при неожиданном сбое (например, битое время пары в
// данных), бизнес-исходы "не найдено" — это обычный текст.
type ScheduleService struct {
	client *client.ScheduleClient
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[string]*model.GroupSchedule

	now func() time.Time
}

// NewScheduleService создаёт сервис расписания
func NewScheduleService(scheduleClient *client.ScheduleClient, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		client: scheduleClient,
		logger: logger,
		cache:  make(map[string]*model.GroupSchedule),
		now:    time.Now,
	}
}

// fetchSchedule возвращает расписание группы из кэша или загружает его.
// Кэшируются только успешные ответы: после сбоя следующий запрос
// пользователя приведёт к новой попытке загрузки.
func (s *ScheduleService) fetchSchedule(ctx context.Context, groupNumber string) (*model.GroupSchedule, bool) {
	s.mu.RLock()
	schedule, ok := s.cache[groupNumber]
	s.mu.RUnlock()
	if ok {
		return schedule, true
	}

	schedule, err := s.client.FetchGroup(ctx, groupNumber)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	s.cache[groupNumber] = schedule
	s.mu.Unlock()

	s.logger.Info("Schedule cached", zap.String("group", groupNumber))

	return schedule, true
}

// Cached сообщает, есть ли расписание группы в кэше. Кэш наполняется
// только успешными загрузками, поэтому это признак "группа существует".
func (s *ScheduleService) Cached(groupNumber string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cache[groupNumber]
	return ok
}

// academicWeekNumber возвращает 1 для нечётной и 2 для чётной недели.
// Недели отсчитываются от 1 сентября текущего учебного года.
func academicWeekNumber(t time.Time) int {
	startYear := t.Year()
	if t.Month() < time.September {
		startYear--
	}
	anchor := time.Date(startYear, time.September, 1, 0, 0, 0, 0, t.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	days := int(day.Sub(anchor).Hours() / 24)
	weeks := days / 7
	if weeks%2 == 0 {
		return 1
	}
	return 2
}

// weekdayIndex возвращает индекс дня недели: 0 - понедельник ... 6 - воскресенье
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// parseClock разбирает время вида "HH:MM" в минуты от начала суток
func parseClock(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("parse lesson time %q: %w", value, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// lessonsForWeek отбирает пары указанной недели ("1"/"2"), сохраняя порядок источника
func lessonsForWeek(lessons []model.Lesson, week string) []model.Lesson {
	var filtered []model.Lesson
	for _, l := range lessons {
		if l.Week == week {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

func groupNotFound(groupNumber string) string {
	return fmt.Sprintf("❌ Группа %s не найдена.", groupNumber)
}

// NearLesson находит ближайшую пару относительно текущего момента:
// сначала идущую сейчас, затем следующую сегодня, затем первую пару в
// ближайшие дни (воскресенье пропускается, чётность считается для каждой
// даты отдельно).
func (s *ScheduleService) NearLesson(ctx context.Context, groupNumber string) (string, error) {
	schedule, ok := s.fetchSchedule(ctx, groupNumber)
	if !ok {
		return groupNotFound(groupNumber), nil
	}

	now := s.now()
	nowMinutes := now.Hour()*60 + now.Minute()
	todayIndex := weekdayIndex(now)
	weekNum := academicWeekNumber(now)

	if dayData, exists := schedule.Days[strconv.Itoa(todayIndex)]; exists && len(dayData.Lessons) > 0 {
		todayLessons := lessonsForWeek(dayData.Lessons, strconv.Itoa(weekNum))

		for _, lesson := range todayLessons {
			start, err := parseClock(lesson.StartTime)
			if err != nil {
				return "", err
			}
			end, err := parseClock(lesson.EndTime)
			if err != nil {
				return "", err
			}
			if start <= nowMinutes && nowMinutes <= end {
				return "Сейчас идёт:\n" + FormatLesson(lesson, 0), nil
			}
		}

		for _, lesson := range todayLessons {
			start, err := parseClock(lesson.StartTime)
			if err != nil {
				return "", err
			}
			if start > nowMinutes {
				return "Ближайшая пара сегодня:\n" + FormatLesson(lesson, 0), nil
			}
		}
	}

	for i := 1; i <= 7; i++ {
		future := now.AddDate(0, 0, i)
		idx := weekdayIndex(future)
		if idx == 6 {
			// Воскресенье - пар не бывает
			continue
		}
		futureWeek := academicWeekNumber(future)

		dayData, exists := schedule.Days[strconv.Itoa(idx)]
		if !exists || len(dayData.Lessons) == 0 {
			continue
		}

		for _, lesson := range dayData.Lessons {
			if lesson.Week != strconv.Itoa(futureWeek) {
				continue
			}
			prefix := dayNames[idx]
			if i == 1 {
				prefix = "завтра"
			}
			parity := model.ParityFromWeekNumber(futureWeek)
			return fmt.Sprintf("📅 Ближайшая пара будет %s (%s неделя):\n%s",
				prefix, parityNom(parity), FormatLesson(lesson, 0)), nil
		}
	}

	return "📭 Ближайших пар не найдено.", nil
}

// DaySchedule возвращает расписание группы на день недели и чётность
func (s *ScheduleService) DaySchedule(ctx context.Context, groupNumber, day string, parity model.WeekParity) (string, error) {
	schedule, ok := s.fetchSchedule(ctx, groupNumber)
	if !ok {
		return groupNotFound(groupNumber), nil
	}

	dayIndex := DayToIndex(day)
	if dayIndex == -1 {
		return "❌ Неверный день недели.", nil
	}

	dayData, exists := schedule.Days[strconv.Itoa(dayIndex)]
	if !exists || len(dayData.Lessons) == 0 {
		return fmt.Sprintf("📭 В этот день пар нет для группы %s.", groupNumber), nil
	}

	lessons := lessonsForWeek(dayData.Lessons, parity.WeekValue())
	if len(lessons) == 0 {
		return fmt.Sprintf("📭 На %s неделю в этот день пар нет.", parityAcc(parity)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Расписание на %s (%s неделя) для группы %s:\n\n",
		dayNames[dayIndex], parityNom(parity), groupNumber)
	for i, lesson := range lessons {
		b.WriteString(FormatLesson(lesson, i+1))
		b.WriteString("\n\n")
	}

	return strings.TrimSpace(b.String()), nil
}

// TomorrowSchedule возвращает расписание на завтра. Если завтра воскресенье,
// берётся понедельник. Чётность вычисляется для целевой даты.
func (s *ScheduleService) TomorrowSchedule(ctx context.Context, groupNumber string) (string, error) {
	tomorrow := s.now().AddDate(0, 0, 1)
	if weekdayIndex(tomorrow) == 6 {
		tomorrow = tomorrow.AddDate(0, 0, 1)
	}

	parity := model.ParityFromWeekNumber(academicWeekNumber(tomorrow))
	return s.DaySchedule(ctx, groupNumber, dayTokens[weekdayIndex(tomorrow)], parity)
}

// WeekSchedule возвращает расписание группы на всю неделю указанной чётности.
// Дни без пар пропускаются, воскресенье не выводится никогда.
func (s *ScheduleService) WeekSchedule(ctx context.Context, groupNumber string, parity model.WeekParity) (string, error) {
	schedule, ok := s.fetchSchedule(ctx, groupNumber)
	if !ok {
		return groupNotFound(groupNumber), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Расписание на %s неделю для группы %s:\n\n", parityAcc(parity), groupNumber)

	hasAny := false
	for i := 0; i < 6; i++ {
		dayData, exists := schedule.Days[strconv.Itoa(i)]
		if !exists || len(dayData.Lessons) == 0 {
			continue
		}
		lessons := lessonsForWeek(dayData.Lessons, parity.WeekValue())
		if len(lessons) == 0 {
			continue
		}

		hasAny = true
		fmt.Fprintf(&b, "--- %s ---\n", dayNamesTitle[i])
		for j, lesson := range lessons {
			b.WriteString(FormatLesson(lesson, j+1))
			b.WriteString("\n\n")
		}
	}

	if !hasAny {
		return fmt.Sprintf("📭 На %s неделе пар нет для группы %s.", parityPrep(parity), groupNumber), nil
	}

	return strings.TrimSpace(b.String()), nil
}
