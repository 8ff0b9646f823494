package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/letihelper/schedule_bot/internal/controller/keyboard"
	"github.com/letihelper/schedule_bot/internal/controller/state"
	svc "github.com/letihelper/schedule_bot/internal/service"
	"go.uber.org/zap"
)

// GroupPromptFunc просит пользователя ввести номер группы
type GroupPromptFunc func(ctx context.Context, b *bot.Bot, chatID, telegramID int64)

// Handler обрабатывает нажатия inline кнопок
type Handler struct {
	stateManager *state.Manager
	groupPrompt  GroupPromptFunc
	logger       *zap.Logger
}

// NewHandler создаёт обработчик callback query
func NewHandler(stateManager *state.Manager, groupPrompt GroupPromptFunc, logger *zap.Logger) *Handler {
	return &Handler{
		stateManager: stateManager,
		groupPrompt:  groupPrompt,
		logger:       logger,
	}
}

// HandleCallbackQuery маршрутизирует callback по префиксу data
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	// Telegram ждёт ответа на каждый callback, иначе кнопка "висит"
	defer b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callback.ID,
	})

	if strings.HasPrefix(callback.Data, keyboard.DayCallbackPrefix) {
		h.handleDaySelection(ctx, b, callback)
		return
	}

	h.logger.Warn("Unknown callback data", zap.String("data", callback.Data))
}

// handleDaySelection обрабатывает выбор дня недели в диалоге "День"
func (h *Handler) handleDaySelection(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	message := callback.Message.Message
	if message == nil {
		h.logger.Warn("Day selection callback without accessible message",
			zap.Int64("telegram_id", callback.From.ID))
		return
	}
	chatID := message.Chat.ID

	day := strings.TrimPrefix(callback.Data, keyboard.DayCallbackPrefix)
	if !svc.IsDayToken(day) {
		h.logger.Warn("Day selection callback with unknown day",
			zap.String("day", day))
		return
	}

	dialog, active := h.stateManager.Get(chatID)
	if !active || dialog.Step != state.StepAwaitingDay {
		// Нажатие на кнопку устаревшего сообщения вне диалога
		h.logger.Debug("Day selection outside of dialog",
			zap.Int64("chat_id", chatID),
			zap.String("day", day))
		return
	}

	dialog.Day = day
	dialog.Step = state.StepAwaitingGroup
	h.stateManager.Set(chatID, dialog)

	h.groupPrompt(ctx, b, chatID, callback.From.ID)
}
