package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4353", r.URL.Query().Get("groupNumber"))
		w.Write([]byte(`{"4353": {"days": {"0": {"lessons": [{"start_time": "09:00", "end_time": "10:30", "name": "Матан", "week": "1"}]}}}}`))
	}))
	defer srv.Close()

	c := NewScheduleClient(srv.URL, zap.NewNop())
	schedule, err := c.FetchGroup(context.Background(), "4353")
	require.NoError(t, err)
	require.Len(t, schedule.Days, 1)
	require.Len(t, schedule.Days["0"].Lessons, 1)
	assert.Equal(t, "Матан", schedule.Days["0"].Lessons[0].Name)
	assert.Equal(t, "1", schedule.Days["0"].Lessons[0].Week)
}

func TestFetchGroupMissingFromResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewScheduleClient(srv.URL, zap.NewNop())
	_, err := c.FetchGroup(context.Background(), "9999")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestFetchGroupNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewScheduleClient(srv.URL, zap.NewNop())
	_, err := c.FetchGroup(context.Background(), "4353")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestFetchGroupMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewScheduleClient(srv.URL, zap.NewNop())
	_, err := c.FetchGroup(context.Background(), "4353")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestFetchGroupUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewScheduleClient(srv.URL, zap.NewNop())
	_, err := c.FetchGroup(context.Background(), "4353")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
