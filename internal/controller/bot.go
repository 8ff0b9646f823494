package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/letihelper/schedule_bot/internal/controller/callbacks"
	"github.com/letihelper/schedule_bot/internal/controller/handlers"
	"github.com/letihelper/schedule_bot/internal/controller/state"
	"github.com/letihelper/schedule_bot/internal/service"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	scheduleService *service.ScheduleService,
	userService *service.UserService,
	historyService *service.HistoryService,
	logger *zap.Logger,
) *BotController {
	// Состояния диалогов живут в памяти процесса
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		scheduleService,
		userService,
		historyService,
		stateManager,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		stateManager,
		cmdHandlers.SendGroupPrompt,
		logger,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)

	// Команды с аргументами матчатся по префиксу
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/near_lesson", bot.MatchTypePrefix, c.handlers.HandleNearLessonCmd)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/tommorow", bot.MatchTypePrefix, c.handlers.HandleTomorrowCmd)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/all", bot.MatchTypePrefix, c.handlers.HandleAllCmd)

	// Обработчик текстовых сообщений (диалоги, кнопки меню, команда дня)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Главное меню"},
		{Command: "near_lesson", Description: "📚 Ближайшая пара"},
		{Command: "tommorow", Description: "📅 Расписание на завтра"},
		{Command: "all", Description: "🗓 Расписание на неделю"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
