package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/letihelper/schedule_bot/internal/client"
	"github.com/letihelper/schedule_bot/internal/controller/state"
	"github.com/letihelper/schedule_bot/internal/model"
	"github.com/letihelper/schedule_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandlers(t *testing.T, payload map[string]model.GroupSchedule) (*Handlers, *state.Manager) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	t.Cleanup(srv.Close)

	logger := zap.NewNop()
	scheduleClient := client.NewScheduleClient(srv.URL, logger)
	scheduleService := service.NewScheduleService(scheduleClient, logger)
	stateManager := state.NewManager()

	return NewHandlers(scheduleService, nil, nil, stateManager, logger), stateManager
}

// newFakeBot поднимает заглушку Telegram API и собирает все исходящие
// вызовы (путь запроса + тело) для проверки отправленных сообщений
func newFakeBot(t *testing.T) (*bot.Bot, *[]string) {
	t.Helper()

	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		requests = append(requests, r.URL.Path+" "+string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"chat":{"id":1}}}`))
	}))
	t.Cleanup(srv.Close)

	b, err := bot.New("test-token", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)
	return b, &requests
}

func textUpdate(chatID int64, text string) *models.Update {
	return &models.Update{Message: &models.Message{
		Text: text,
		Chat: models.Chat{ID: chatID},
		From: &models.User{ID: chatID},
	}}
}

func TestParityFromLabel(t *testing.T) {
	tests := []struct {
		text   string
		parity model.WeekParity
		ok     bool
	}{
		{"Нечётная неделя", model.ParityOdd, true},
		{"Чётная неделя", model.ParityEven, true},
		{"НЕЧЁТНАЯ", model.ParityOdd, true},
		{"чЁтНаЯ", model.ParityEven, true},
		{"хочу нечётная пожалуйста", model.ParityOdd, true},
		{"завтра", model.ParityUnset, false},
		{"odd", model.ParityUnset, false},
		{"", model.ParityUnset, false},
	}

	for _, tc := range tests {
		parity, ok := parityFromLabel(tc.text)
		assert.Equal(t, tc.ok, ok, "text %q", tc.text)
		assert.Equal(t, tc.parity, parity, "text %q", tc.text)
	}
}

func TestTextWhileAwaitingDayRepromptsDayMenu(t *testing.T) {
	h, manager := newTestHandlers(t, map[string]model.GroupSchedule{})
	b, requests := newFakeBot(t)
	const chatID = int64(42)

	manager.Set(chatID, state.Dialog{
		Step:       state.StepAwaitingDay,
		Action:     state.ActionDay,
		WeekParity: model.ParityOdd,
	})

	// Пользователь пишет день текстом вместо нажатия кнопки
	h.HandleTextMessage(context.Background(), b, textUpdate(chatID, "среда"))

	// Чат не остаётся без ответа: клавиатура дней отправляется снова
	require.Len(t, *requests, 1)
	assert.Contains(t, (*requests)[0], "sendMessage")
	assert.Contains(t, (*requests)[0], "Выберите день недели")

	// Диалог по-прежнему ждёт выбор дня
	dialog, active := manager.Get(chatID)
	require.True(t, active)
	assert.Equal(t, state.StepAwaitingDay, dialog.Step)
	assert.Equal(t, model.ParityOdd, dialog.WeekParity)
}

func TestWeekTypeStepAdvancesDialog(t *testing.T) {
	h, manager := newTestHandlers(t, map[string]model.GroupSchedule{})
	b, requests := newFakeBot(t)
	const chatID = int64(42)

	manager.Set(chatID, state.Dialog{Step: state.StepAwaitingWeekType, Action: state.ActionDay})

	h.HandleTextMessage(context.Background(), b, textUpdate(chatID, "Нечётная неделя"))

	dialog, active := manager.Get(chatID)
	require.True(t, active)
	assert.Equal(t, state.StepAwaitingDay, dialog.Step)
	assert.Equal(t, model.ParityOdd, dialog.WeekParity)

	require.Len(t, *requests, 1)
	assert.Contains(t, (*requests)[0], "Выберите день недели")
}

func TestWeekTypeStepRepromptsOnUnknownText(t *testing.T) {
	h, manager := newTestHandlers(t, map[string]model.GroupSchedule{})
	b, requests := newFakeBot(t)
	const chatID = int64(42)

	manager.Set(chatID, state.Dialog{Step: state.StepAwaitingWeekType, Action: state.ActionWeek})

	h.HandleTextMessage(context.Background(), b, textUpdate(chatID, "не знаю"))

	// Состояние не изменилось, меню выбора недели отправлено повторно
	dialog, active := manager.Get(chatID)
	require.True(t, active)
	assert.Equal(t, state.StepAwaitingWeekType, dialog.Step)
	assert.Equal(t, model.ParityUnset, dialog.WeekParity)

	require.Len(t, *requests, 1)
	assert.Contains(t, (*requests)[0], "Выберите тип недели")
}

func TestCompleteDialogDayQuery(t *testing.T) {
	payload := map[string]model.GroupSchedule{
		"4353": {Days: map[string]model.DaySchedule{
			"2": {Lessons: []model.Lesson{
				{StartTime: "10:00", EndTime: "11:30", Name: "Физика", SubjectType: "Лек", Week: "1"},
			}},
		}},
	}
	h, manager := newTestHandlers(t, payload)
	const chatID = int64(42)

	// Диалог: "День" -> нечётная -> среда -> группа
	dialog := state.Dialog{
		Step:       state.StepAwaitingGroup,
		Action:     state.ActionDay,
		WeekParity: model.ParityOdd,
		Day:        "wednesday",
	}
	manager.Set(chatID, dialog)

	response := h.CompleteDialog(context.Background(), chatID, dialog, "4353")

	assert.Contains(t, response, "среда")
	assert.Contains(t, response, "Физика (Лекция)")

	// Состояние очищено после завершения
	_, active := manager.Get(chatID)
	assert.False(t, active)
}

func TestCompleteDialogClearsStateOnNotFound(t *testing.T) {
	h, manager := newTestHandlers(t, map[string]model.GroupSchedule{})
	const chatID = int64(1)

	dialog := state.Dialog{Step: state.StepAwaitingGroup, Action: state.ActionWeek, WeekParity: model.ParityEven}
	manager.Set(chatID, dialog)

	response := h.CompleteDialog(context.Background(), chatID, dialog, "9999")

	assert.Equal(t, "❌ Группа 9999 не найдена.", response)
	_, active := manager.Get(chatID)
	assert.False(t, active)
}

func TestCompleteDialogClearsStateOnError(t *testing.T) {
	// Битое время пары приводит к внутренней ошибке резолвера.
	// Пары с обеими чётностями на каждый день, чтобы ошибка
	// воспроизводилась независимо от текущей даты теста.
	days := make(map[string]model.DaySchedule)
	for i := 0; i < 7; i++ {
		days[strconv.Itoa(i)] = model.DaySchedule{Lessons: []model.Lesson{
			{StartTime: "garbage", EndTime: "10:30", Name: "Сломанная пара", Week: "1"},
			{StartTime: "garbage", EndTime: "10:30", Name: "Сломанная пара", Week: "2"},
		}}
	}
	payload := map[string]model.GroupSchedule{
		"6666": {Days: days},
	}
	h, manager := newTestHandlers(t, payload)
	const chatID = int64(7)

	dialog := state.Dialog{Step: state.StepAwaitingGroup, Action: state.ActionNearLesson}
	manager.Set(chatID, dialog)

	response := h.CompleteDialog(context.Background(), chatID, dialog, "6666")

	assert.Contains(t, response, "⚠️ Ошибка:")
	_, active := manager.Get(chatID)
	assert.False(t, active)
}

func TestCompleteDialogUnknownAction(t *testing.T) {
	h, manager := newTestHandlers(t, map[string]model.GroupSchedule{})
	manager.Set(5, state.Dialog{Step: state.StepAwaitingGroup, Action: "bogus"})

	response := h.CompleteDialog(context.Background(), 5, state.Dialog{Action: "bogus"}, "4353")

	assert.Equal(t, "❌ Неизвестное действие.", response)
	_, active := manager.Get(5)
	assert.False(t, active)
}
