package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/letihelper/schedule_bot/internal/controller/keyboard"
	"github.com/letihelper/schedule_bot/internal/controller/state"
	"github.com/letihelper/schedule_bot/internal/model"
	"go.uber.org/zap"
)

const defaultGroupExample = "4353"

// sendMainMenu отправляет текст с клавиатурой главного меню
func (h *Handlers) sendMainMenu(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: keyboard.MainMenu(),
	})
	if err != nil {
		h.logger.Error("Failed to send main menu", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// sendWeekTypeMenu отправляет выбор чётности недели
func (h *Handlers) sendWeekTypeMenu(ctx context.Context, b *bot.Bot, chatID int64) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Выберите тип недели:",
		ReplyMarkup: keyboard.WeekTypeMenu(),
	})
	if err != nil {
		h.logger.Error("Failed to send week type menu", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// sendDayMenu отправляет выбор дня недели
func (h *Handlers) sendDayMenu(ctx context.Context, b *bot.Bot, chatID int64) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Выберите день недели:",
		ReplyMarkup: keyboard.DayMenu(),
	})
	if err != nil {
		h.logger.Error("Failed to send day menu", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// SendGroupPrompt просит ввести номер группы. Если пользователь уже
// запрашивал расписание, в примере показывается его последняя группа.
func (h *Handlers) SendGroupPrompt(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	example := defaultGroupExample
	if last := h.userService.LastGroup(ctx, telegramID); last != "" {
		example = last
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("Введите номер группы (например: %s):", example),
	})
	if err != nil {
		h.logger.Error("Failed to send group prompt", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// sendText отправляет обычное текстовое сообщение
func (h *Handlers) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// afterQuery выполняет пост-обработку завершённого запроса: запоминает
// группу пользователя и пишет журнал. Выполняется только если группа
// реально существует - в кэш расписаний попадают только успешные загрузки.
func (h *Handlers) afterQuery(ctx context.Context, telegramID int64, groupNumber string, action state.Action, parity model.WeekParity, day string) {
	if !h.scheduleService.Cached(groupNumber) {
		return
	}

	h.userService.RememberGroup(ctx, telegramID, groupNumber)
	h.historyService.Record(ctx, telegramID, groupNumber, string(action), parity, day)
}
