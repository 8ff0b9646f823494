package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/letihelper/schedule_bot/internal/model"
)

// RequestLogRepository журнал выполненных запросов расписания.
// Таблица только дописывается, бот из неё ничего не читает.
type RequestLogRepository struct {
	pool *pgxpool.Pool
}

func NewRequestLogRepository(pool *pgxpool.Pool) *RequestLogRepository {
	return &RequestLogRepository{pool: pool}
}

// Create добавляет запись в журнал запросов
func (r *RequestLogRepository) Create(ctx context.Context, request *model.ScheduleRequest) error {
	query := `
		INSERT INTO schedule_requests (telegram_id, group_number, action, week_parity, day)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		request.TelegramID,
		request.GroupNumber,
		request.Action,
		request.WeekParity,
		request.Day,
	).Scan(&request.ID, &request.CreatedAt)

	if err != nil {
		return fmt.Errorf("create schedule request: %w", err)
	}

	return nil
}
