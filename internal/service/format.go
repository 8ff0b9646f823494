package service

import (
	"fmt"
	"strings"

	"github.com/letihelper/schedule_bot/internal/model"
)

// Токены дней недели, как их принимает команда и callback кнопок
var dayTokens = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Названия дней недели на русском (индекс 0 - понедельник)
var dayNames = []string{"понедельник", "вторник", "среда", "четверг", "пятница", "суббота", "воскресенье"}

// Заголовки секций недельного расписания; воскресенье не выводится никогда
var dayNamesTitle = []string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"}

// DayToIndex преобразует токен дня недели в индекс 0-6, -1 если токен не распознан
func DayToIndex(day string) int {
	for i, token := range dayTokens {
		if token == strings.ToLower(day) {
			return i
		}
	}
	return -1
}

// IsDayToken проверяет что токен является названием дня недели
func IsDayToken(token string) bool {
	return DayToIndex(token) != -1
}

// subjectTypeLabel переводит короткий код типа занятия в читаемое название.
// Неизвестные коды возвращаются как есть.
func subjectTypeLabel(t string) string {
	switch t {
	case "Лек":
		return "Лекция"
	case "Пр":
		return "Практика"
	case "Лаб":
		return "Лабораторная"
	}
	return t
}

// formLabel переводит код формы проведения в читаемое название
func formLabel(f string) string {
	switch f {
	case "standard":
		return "Очно"
	case "online":
		return "Онлайн"
	case "distant":
		return "Дистанционно"
	}
	return f
}

// Формы слова "нечётная/чётная" для разных падежей в сообщениях

func parityNom(p model.WeekParity) string {
	if p == model.ParityEven {
		return "чётная"
	}
	return "нечётная"
}

func parityAcc(p model.WeekParity) string {
	if p == model.ParityEven {
		return "чётную"
	}
	return "нечётную"
}

func parityPrep(p model.WeekParity) string {
	if p == model.ParityEven {
		return "чётной"
	}
	return "нечётной"
}

// FormatLesson форматирует одну пару в многострочный блок.
// index > 0 добавляет номер пары первой строкой.
func FormatLesson(lesson model.Lesson, index int) string {
	var lines []string

	if index > 0 {
		lines = append(lines, fmt.Sprintf("%d.", index))
	}

	lines = append(lines, fmt.Sprintf("🕐 %s - %s", lesson.StartTime, lesson.EndTime))

	name := lesson.Name
	if lesson.SubjectType != "" {
		name += fmt.Sprintf(" (%s)", subjectTypeLabel(lesson.SubjectType))
	}
	lines = append(lines, "📖 "+name)

	var teachers []string
	for _, t := range []string{lesson.Teacher, lesson.SecondTeacher} {
		if t != "" {
			teachers = append(teachers, t)
		}
	}
	if len(teachers) > 0 {
		lines = append(lines, "👨‍🏫 "+strings.Join(teachers, ", "))
	}

	var loc string
	if lesson.Room != "" {
		loc = "📍 Ауд. " + lesson.Room
		if lesson.Form != "" {
			loc += fmt.Sprintf(" (%s)", formLabel(lesson.Form))
		}
	} else if lesson.Form != "" {
		loc = "📍 " + formLabel(lesson.Form)
	}
	if loc != "" {
		lines = append(lines, loc)
	}

	if lesson.URL != "" {
		lines = append(lines, "🔗 "+lesson.URL)
	}

	return strings.Join(lines, "\n")
}
