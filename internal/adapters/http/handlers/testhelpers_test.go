package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/task-tracker/internal/domain/task"
	"github.com/jsamuelsen11/task-tracker/internal/domain/user"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withActor(r *http.Request, a ports.Actor) *http.Request {
	return r.WithContext(ports.WithActor(r.Context(), a))
}

func validTask() task.Task {
	return task.Task{
		ID:        1,
		Title:     task.MustTitle("Write report"),
		Status:    task.StatusCreated,
		CreatorID: 2,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validUser() user.User {
	return user.User{
		ID:           2,
		Username:     "ana",
		Email:        user.MustEmail("ana@example.com"),
		PasswordHash: "$2a$04$hash",
		CreatedAt:    testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func ptr[T any](v T) *T { return &v }
