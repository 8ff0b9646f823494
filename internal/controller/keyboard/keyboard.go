package keyboard

import "github.com/go-telegram/bot/models"

// Подписи кнопок главного меню. Роутинг текстовых сообщений сверяется с
// этими же константами, поэтому смена подписи не может разъехаться с логикой.
const (
	BtnNearLesson = "📚 Ближайшая пара"
	BtnTomorrow   = "📅 Завтра"
	BtnDay        = "📖 День"
	BtnWeek       = "🗓️ Неделя"

	BtnWeekEven = "Чётная неделя"
	BtnWeekOdd  = "Нечётная неделя"
)

// Префикс callback data кнопок выбора дня: day_monday ... day_saturday
const DayCallbackPrefix = "day_"

// MainMenu клавиатура главного меню
func MainMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: BtnNearLesson}, {Text: BtnTomorrow}},
			{{Text: BtnDay}, {Text: BtnWeek}},
		},
		ResizeKeyboard: true,
	}
}

// WeekTypeMenu клавиатура выбора чётности недели
func WeekTypeMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: BtnWeekEven}, {Text: BtnWeekOdd}},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}

// DayMenu inline клавиатура выбора дня недели (воскресенье не предлагается)
func DayMenu() *models.InlineKeyboardMarkup {
	days := []struct {
		label string
		token string
	}{
		{"Понедельник", "monday"},
		{"Вторник", "tuesday"},
		{"Среда", "wednesday"},
		{"Четверг", "thursday"},
		{"Пятница", "friday"},
		{"Суббота", "saturday"},
	}

	var rows [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton
	for _, d := range days {
		row = append(row, models.InlineKeyboardButton{
			Text:         d.label,
			CallbackData: DayCallbackPrefix + d.token,
		})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
