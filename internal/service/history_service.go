package service

import (
	"context"

	"github.com/letihelper/schedule_bot/internal/model"
	"github.com/letihelper/schedule_bot/internal/repository"
	"go.uber.org/zap"
)

// HistoryService пишет журнал выполненных запросов расписания.
// Журнал нужен только оператору, поэтому сбои записи не мешают ответу
// пользователю: они логируются и проглатываются.
type HistoryService struct {
	requestRepo *repository.RequestLogRepository
	logger      *zap.Logger
}

func NewHistoryService(requestRepo *repository.RequestLogRepository, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Record добавляет выполненный запрос в журнал
func (s *HistoryService) Record(ctx context.Context, telegramID int64, groupNumber, action string, parity model.WeekParity, day string) {
	request := &model.ScheduleRequest{
		TelegramID:  telegramID,
		GroupNumber: groupNumber,
		Action:      action,
		WeekParity:  string(parity),
		Day:         day,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		s.logger.Warn("Failed to record schedule request",
			zap.Int64("telegram_id", telegramID),
			zap.String("group", groupNumber),
			zap.String("action", action),
			zap.Error(err))
	}
}
