package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/letihelper/schedule_bot/internal/controller/state"
	"github.com/letihelper/schedule_bot/internal/model"
	svc "github.com/letihelper/schedule_bot/internal/service"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	user := update.Message.From

	// Регистрируем пользователя; сбой регистрации не мешает работе с ботом
	_, err := h.userService.RegisterUser(
		ctx,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
	)
	if err != nil {
		h.logger.Error("Failed to register user",
			zap.Int64("telegram_id", user.ID),
			zap.Error(err))
	}

	// Любой начатый диалог сбрасывается
	h.stateManager.Clear(chatID)

	h.sendMainMenu(ctx, b, chatID, "👋 Привет! Я бот с расписанием ЛЭТИ.\n📚 Выберите действие:")
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Справка по командам:\n\n" +
		"/start - Главное меню\n" +
		"/near_lesson <группа> - Ближайшая пара\n" +
		"/tommorow <группа> - Расписание на завтра\n" +
		"/all <odd|even> <группа> - Расписание на неделю\n\n" +
		"Расписание на день одной строкой:\n" +
		"<день недели> <odd|even> <группа>\n" +
		"Например: monday odd 4353"

	h.sendText(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleNearLessonCmd обрабатывает команду /near_lesson <группа>
func (h *Handlers) HandleNearLessonCmd(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		h.sendText(ctx, b, chatID, "Использование: /near_lesson <номер_группы>")
		return
	}
	group := parts[1]

	response, err := h.scheduleService.NearLesson(ctx, group)
	if err != nil {
		h.logger.Error("Near lesson query failed", zap.String("group", group), zap.Error(err))
		response = "⚠️ Ошибка: " + err.Error()
	}

	h.afterQuery(ctx, update.Message.From.ID, group, state.ActionNearLesson, model.ParityUnset, "")
	h.sendText(ctx, b, chatID, response)
}

// HandleTomorrowCmd обрабатывает команду /tommorow <группа>
func (h *Handlers) HandleTomorrowCmd(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		h.sendText(ctx, b, chatID, "Использование: /tommorow <номер_группы>")
		return
	}
	group := parts[1]

	response, err := h.scheduleService.TomorrowSchedule(ctx, group)
	if err != nil {
		h.logger.Error("Tomorrow query failed", zap.String("group", group), zap.Error(err))
		response = "⚠️ Ошибка: " + err.Error()
	}

	h.afterQuery(ctx, update.Message.From.ID, group, state.ActionTomorrow, model.ParityUnset, "")
	h.sendText(ctx, b, chatID, response)
}

// HandleAllCmd обрабатывает команду /all <odd|even> <группа>
func (h *Handlers) HandleAllCmd(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	parts := strings.Fields(update.Message.Text)
	if len(parts) < 3 {
		h.sendText(ctx, b, chatID, "Использование: /all <odd|even> <номер_группы>")
		return
	}

	parity, ok := model.ParseParity(strings.ToLower(parts[1]))
	if !ok {
		h.sendText(ctx, b, chatID, "Неделя должна быть 'odd' или 'even'")
		return
	}
	group := parts[2]

	response, err := h.scheduleService.WeekSchedule(ctx, group, parity)
	if err != nil {
		h.logger.Error("Week query failed", zap.String("group", group), zap.Error(err))
		response = "⚠️ Ошибка: " + err.Error()
	}

	h.afterQuery(ctx, update.Message.From.ID, group, state.ActionWeek, parity, "")
	h.sendText(ctx, b, chatID, response)
}

// handleDayCommand обрабатывает однострочный запрос дня:
// <день недели> <odd|even> <группа>
func (h *Handlers) handleDayCommand(ctx context.Context, b *bot.Bot, update *models.Update, parts []string) {
	chatID := update.Message.Chat.ID

	day := strings.ToLower(parts[0])
	if !svc.IsDayToken(day) {
		h.sendText(ctx, b, chatID, "❌ Неверный день недели.")
		return
	}

	parity, ok := model.ParseParity(strings.ToLower(parts[1]))
	if !ok {
		h.sendText(ctx, b, chatID, "Неделя должна быть 'odd' или 'even'")
		return
	}
	group := parts[2]

	response, err := h.scheduleService.DaySchedule(ctx, group, day, parity)
	if err != nil {
		h.logger.Error("Day query failed", zap.String("group", group), zap.Error(err))
		response = "⚠️ Ошибка: " + err.Error()
	}

	h.afterQuery(ctx, update.Message.From.ID, group, state.ActionDay, parity, day)
	h.sendText(ctx, b, chatID, response)
}
