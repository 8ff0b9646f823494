package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/letihelper/schedule_bot/internal/model"
	"go.uber.org/zap"
)

// ErrGroupNotFound группа отсутствует в ответе API либо API недоступен.
// Для пользователя эти случаи неразличимы, различие остаётся в логах.
var ErrGroupNotFound = errors.New("group not found")

const fetchTimeout = 10 * time.Second

// ScheduleClient клиент API расписания ЛЭТИ
type ScheduleClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewScheduleClient создаёт клиент API расписания
func NewScheduleClient(baseURL string, logger *zap.Logger) *ScheduleClient {
	return &ScheduleClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
		logger: logger,
	}
}

// FetchGroup загружает недельное расписание группы.
// Любой сбой (сеть, не-2xx статус, битый JSON, группа не в ответе) приводит
// к ErrGroupNotFound.
func (c *ScheduleClient) FetchGroup(ctx context.Context, groupNumber string) (*model.GroupSchedule, error) {
	requestID := uuid.NewString()

	reqURL := fmt.Sprintf("%s?groupNumber=%s", c.baseURL, url.QueryEscape(groupNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to build schedule request",
			zap.String("request_id", requestID),
			zap.String("group", groupNumber),
			zap.Error(err))
		return nil, ErrGroupNotFound
	}

	c.logger.Debug("Fetching schedule",
		zap.String("request_id", requestID),
		zap.String("group", groupNumber))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Schedule API request failed",
			zap.String("request_id", requestID),
			zap.String("group", groupNumber),
			zap.Error(err))
		return nil, ErrGroupNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Schedule API returned non-2xx status",
			zap.String("request_id", requestID),
			zap.String("group", groupNumber),
			zap.Int("status", resp.StatusCode))
		return nil, ErrGroupNotFound
	}

	// Ответ — объект, ключованный номером группы
	var payload map[string]model.GroupSchedule
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode schedule response",
			zap.String("request_id", requestID),
			zap.String("group", groupNumber),
			zap.Error(err))
		return nil, ErrGroupNotFound
	}

	schedule, ok := payload[groupNumber]
	if !ok {
		c.logger.Info("Group not present in schedule response",
			zap.String("request_id", requestID),
			zap.String("group", groupNumber))
		return nil, ErrGroupNotFound
	}

	c.logger.Info("Schedule fetched",
		zap.String("request_id", requestID),
		zap.String("group", groupNumber),
		zap.Int("days", len(schedule.Days)))

	return &schedule, nil
}
