package model

import "time"

// ScheduleRequest запись в журнале выполненных запросов расписания
type ScheduleRequest struct {
	ID          int64     `json:"id"`
	TelegramID  int64     `json:"telegram_id"`
	GroupNumber string    `json:"group_number"`
	Action      string    `json:"action"`
	WeekParity  string    `json:"week_parity"`
	Day         string    `json:"day"`
	CreatedAt   time.Time `json:"created_at"`
}
