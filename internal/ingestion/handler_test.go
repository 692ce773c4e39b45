package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	v1 "github.com/bigsister-lab/bigsister/internal/api/v1"
	httperr "github.com/bigsister-lab/bigsister/internal/core/errors"
	"github.com/bigsister-lab/bigsister/internal/core/storage"
	"github.com/bigsister-lab/bigsister/internal/escalation"
	platformmocks "github.com/bigsister-lab/bigsister/internal/mocks/platform"
	storagemocks "github.com/bigsister-lab/bigsister/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, store *storagemocks.EventStore, opts Options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(store, escalation.NewTrigger(platformmocks.NewNotifier(t), 5, 6, time.Second), nil, opts)
	r := gin.New()
	svc.RegisterRoutes(r)
	return r
}

func post(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestAppendMessageHandler_Success(t *testing.T) {
	store := storagemocks.NewEventStore(t)
	store.EXPECT().
		AppendMessage(mock.Anything, mock.MatchedBy(func(e *v1.MessageEvent) bool {
			return e.ID == 1234567890123456789 && e.Author == 42
		})).
		Return(nil).
		Once()

	r := newTestRouter(t, store, Options{})
	body := []byte(`{"id":"1234567890123456789","author":"42","channel_id":"7","channel_name":"general",` +
		`"guild_id":"900","content":"hi","created_at":"2026-10-08T12:00:00Z"}`)

	resp := post(r, "/v1/messages", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	var res Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &res))
	require.Equal(t, int64(1234567890123456789), res.ID)
	require.False(t, res.Duplicate)
}

func TestAppendMessageHandler_Duplicate(t *testing.T) {
	store := storagemocks.NewEventStore(t)
	store.EXPECT().AppendMessage(mock.Anything, mock.Anything).Return(storage.ErrDuplicate).Once()

	r := newTestRouter(t, store, Options{})
	body, _ := json.Marshal(message(1, "hi"))

	resp := post(r, "/v1/messages", body)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"duplicate":true`)
}

func TestAppendModlogHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       []byte
		opts       Options
		mockResult func(store *storagemocks.EventStore)
		wantStatus int
		wantType   string
	}{
		{
			name:       "invalid json",
			body:       []byte("not json"),
			wantStatus: http.StatusBadRequest,
			wantType:   httperr.HttpInvalidJsonError,
		},
		{
			name:       "unknown modlog type",
			body:       mustJSON(t, func() *v1.ModlogEvent { ev := modlog(1); ev.Type = "kick"; return ev }()),
			wantStatus: http.StatusBadRequest,
			wantType:   httperr.HttpValidationError,
		},
		{
			name:       "foreign guild",
			body:       mustJSON(t, modlog(1)),
			opts:       Options{GuildID: 1},
			wantStatus: http.StatusBadRequest,
			wantType:   httperr.HttpForeignGuildError,
		},
		{
			name:       "oversized body",
			body:       []byte(`{"content":"` + strings.Repeat("x", 2*1024*1024) + `"}`),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantType:   httperr.HttpInvalidJsonError,
		},
		{
			name: "store timeout",
			body: mustJSON(t, modlog(1)),
			mockResult: func(store *storagemocks.EventStore) {
				store.EXPECT().AppendModlog(mock.Anything, mock.Anything, mock.Anything).
					Return(int64(0), fmt.Errorf("append modlog: %w", storage.ErrTimeout)).Once()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantType:   httperr.HttpStoreTimeoutError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storagemocks.NewEventStore(t)
			if tc.mockResult != nil {
				tc.mockResult(store)
			}
			r := newTestRouter(t, store, tc.opts)

			resp := post(r, "/v1/modlogs", tc.body)
			require.Equal(t, tc.wantStatus, resp.Code)

			var errResp httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
			require.Equal(t, tc.wantType, errResp.ErrorType)
		})
	}
}

func TestGetHandlers(t *testing.T) {
	created := time.Date(2026, 10, 8, 12, 0, 0, 0, time.UTC)
	store := storagemocks.NewEventStore(t)
	store.EXPECT().GetMessage(mock.Anything, int64(10)).
		Return(&v1.MessageEvent{ID: 10, Author: 1, ChannelID: 2, GuildID: 3, CreatedAt: created}, nil).Once()
	store.EXPECT().GetModlog(mock.Anything, int64(11)).Return(nil, storage.ErrNotFound).Once()

	r := newTestRouter(t, store, Options{})

	resp := get(r, "/v1/messages/10")
	require.Equal(t, http.StatusOK, resp.Code)
	var evt v1.MessageEvent
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &evt))
	require.Equal(t, int64(10), evt.ID)
	require.True(t, created.Equal(evt.CreatedAt))

	resp = get(r, "/v1/modlogs/11")
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = get(r, "/v1/messages/abc")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
