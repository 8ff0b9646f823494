package handlers

import (
	"github.com/letihelper/schedule_bot/internal/controller/state"
	"github.com/letihelper/schedule_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	scheduleService *service.ScheduleService
	userService     *service.UserService
	historyService  *service.HistoryService
	stateManager    *state.Manager
	logger          *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	scheduleService *service.ScheduleService,
	userService *service.UserService,
	historyService *service.HistoryService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		scheduleService: scheduleService,
		userService:     userService,
		historyService:  historyService,
		stateManager:    stateManager,
		logger:          logger,
	}
}
