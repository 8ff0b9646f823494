package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/letihelper/schedule_bot/internal/controller/keyboard"
	"github.com/letihelper/schedule_bot/internal/controller/state"
	"github.com/letihelper/schedule_bot/internal/model"
	svc "github.com/letihelper/schedule_bot/internal/service"
	"go.uber.org/zap"
)

// HandleTextMessage обрабатывает текстовые сообщения: шаги активного
// диалога, однострочную команду дня и кнопки главного меню.
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются своими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID
	text := strings.TrimSpace(update.Message.Text)

	dialog, active := h.stateManager.Get(chatID)
	if active {
		switch dialog.Step {
		case state.StepAwaitingGroup:
			// Любой текст на этом шаге - номер группы
			response := h.CompleteDialog(ctx, chatID, dialog, text)
			h.afterQuery(ctx, telegramID, text, dialog.Action, dialog.WeekParity, dialog.Day)
			h.sendMainMenu(ctx, b, chatID, response)
		case state.StepAwaitingWeekType:
			h.handleWeekTypeStep(ctx, b, update, dialog, text)
		default:
			// На шаге выбора дня ждём нажатия кнопки - повторяем
			// клавиатуру дней, без ответа чат оставлять нельзя
			h.sendDayMenu(ctx, b, chatID)
		}
		return
	}

	// Однострочный запрос дня: "monday odd 4353"
	parts := strings.Fields(text)
	if len(parts) >= 3 && svc.IsDayToken(parts[0]) {
		h.handleDayCommand(ctx, b, update, parts)
		return
	}

	// Кнопки главного меню
	switch text {
	case keyboard.BtnNearLesson:
		h.stateManager.Set(chatID, state.Dialog{Step: state.StepAwaitingGroup, Action: state.ActionNearLesson})
		h.SendGroupPrompt(ctx, b, chatID, telegramID)
	case keyboard.BtnTomorrow:
		h.stateManager.Set(chatID, state.Dialog{Step: state.StepAwaitingGroup, Action: state.ActionTomorrow})
		h.SendGroupPrompt(ctx, b, chatID, telegramID)
	case keyboard.BtnDay:
		h.stateManager.Set(chatID, state.Dialog{Step: state.StepAwaitingWeekType, Action: state.ActionDay})
		h.sendWeekTypeMenu(ctx, b, chatID)
	case keyboard.BtnWeek:
		h.stateManager.Set(chatID, state.Dialog{Step: state.StepAwaitingWeekType, Action: state.ActionWeek})
		h.sendWeekTypeMenu(ctx, b, chatID)
	default:
		h.sendMainMenu(ctx, b, chatID, "❌ Неизвестная команда. Выберите действие:")
	}
}

// parityFromLabel распознаёт чётность недели в тексте пользователя.
// Подстрочное сравнение без учёта регистра; порядок проверок важен:
// "чётная" является подстрокой "нечётная".
func parityFromLabel(text string) (model.WeekParity, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "нечётная"):
		return model.ParityOdd, true
	case strings.Contains(lower, "чётная"):
		return model.ParityEven, true
	}
	return model.ParityUnset, false
}

// handleWeekTypeStep обрабатывает выбор чётности недели
func (h *Handlers) handleWeekTypeStep(ctx context.Context, b *bot.Bot, update *models.Update, dialog state.Dialog, text string) {
	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	parity, ok := parityFromLabel(text)
	if !ok {
		// Не распознали - повторяем меню, состояние не меняется
		h.sendWeekTypeMenu(ctx, b, chatID)
		return
	}
	dialog.WeekParity = parity

	switch dialog.Action {
	case state.ActionDay:
		dialog.Step = state.StepAwaitingDay
		h.stateManager.Set(chatID, dialog)
		h.sendDayMenu(ctx, b, chatID)
	case state.ActionWeek:
		dialog.Step = state.StepAwaitingGroup
		h.stateManager.Set(chatID, dialog)
		h.SendGroupPrompt(ctx, b, chatID, telegramID)
	}
}

// CompleteDialog выполняет собранный диалогом запрос и возвращает текст
// ответа. Состояние чата очищается до отправки ответа независимо от
// исхода, поэтому повтор того же сообщения будет обычной командой.
func (h *Handlers) CompleteDialog(ctx context.Context, chatID int64, dialog state.Dialog, groupNumber string) string {
	h.stateManager.Clear(chatID)

	var (
		response string
		err      error
	)

	switch dialog.Action {
	case state.ActionNearLesson:
		response, err = h.scheduleService.NearLesson(ctx, groupNumber)
	case state.ActionTomorrow:
		response, err = h.scheduleService.TomorrowSchedule(ctx, groupNumber)
	case state.ActionDay:
		response, err = h.scheduleService.DaySchedule(ctx, groupNumber, dialog.Day, dialog.WeekParity)
	case state.ActionWeek:
		response, err = h.scheduleService.WeekSchedule(ctx, groupNumber, dialog.WeekParity)
	default:
		return "❌ Неизвестное действие."
	}

	if err != nil {
		h.logger.Error("Dialog resolution failed",
			zap.Int64("chat_id", chatID),
			zap.String("action", string(dialog.Action)),
			zap.String("group", groupNumber),
			zap.Error(err))
		return "⚠️ Ошибка: " + err.Error()
	}

	return response
}
