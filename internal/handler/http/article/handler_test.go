package article_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-service/internal/domain/entity"
	"article-service/internal/handler/http/article"
	artUC "article-service/internal/usecase/article"
)

/* ───────── モック実装 ───────── */

type stubRepo struct {
	mu        sync.Mutex
	data      map[int64]entity.Article
	nextID    int64
	createErr error
	getErr    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]entity.Article{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	stored := *a
	stored.ID = s.nextID
	s.nextID++
	s.data[stored.ID] = stored
	return nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	a, ok := s.data[id]
	if !ok {
		return nil, fmt.Errorf("Get: %w", entity.ErrNotFound)
	}
	return &a, nil
}

/* ───────── ヘルパ ───────── */

func newMux(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	article.Register(mux, artUC.Service{Repo: repo})
	return mux
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

const launchBody = `{"title":"Launch","content":"We shipped.","published_date":"2024-01-01"}`

/* ───────── 作成 ───────── */

func TestCreateHandler_Success(t *testing.T) {
	repo := newStub()
	rr := do(t, newMux(repo), http.MethodPost, "/articles", launchBody)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, article.CreatedMessage, rr.Body.String())
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, entity.Article{ID: 1, Title: "Launch", Content: "We shipped.", PublishedDate: "2024-01-01"}, repo.data[1])
}

func TestCreateHandler_TrailingWhitespaceAccepted(t *testing.T) {
	rr := do(t, newMux(newStub()), http.MethodPost, "/articles", launchBody+"\n  \t")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateHandler_EmptyStringsAccepted(t *testing.T) {
	rr := do(t, newMux(newStub()), http.MethodPost, "/articles",
		`{"title":"","content":"","published_date":""}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreateHandler_DecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{name: "malformed json", body: `{"title":`, wantCode: http.StatusBadRequest},
		{name: "empty body", body: ``, wantCode: http.StatusBadRequest},
		{name: "trailing data", body: `{"title":"a","content":"b","published_date":"c"} trailing`, wantCode: http.StatusBadRequest, wantBody: "trailing characters"},
		{name: "second json value", body: `{"title":"a","content":"b","published_date":"c"}{}`, wantCode: http.StatusBadRequest},
		{name: "missing title", body: `{"content":"c","published_date":"d"}`, wantCode: http.StatusUnprocessableEntity, wantBody: "`title`"},
		{name: "missing published_date", body: `{"title":"t","content":"c"}`, wantCode: http.StatusUnprocessableEntity, wantBody: "`published_date`"},
		{name: "wrong type", body: `{"title":5,"content":"c","published_date":"d"}`, wantCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStub()
			rr := do(t, newMux(repo), http.MethodPost, "/articles", tt.body)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			assert.Empty(t, repo.data, "nothing must be stored")
		})
	}
}

func TestCreateHandler_StoreError(t *testing.T) {
	repo := newStub()
	repo.createErr = errors.New(`Create: failed to connect to postgres://app:hunter2@db:5432/articles`)

	rr := do(t, newMux(repo), http.MethodPost, "/articles", launchBody)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "Error creating article: "))
	assert.NotContains(t, rr.Body.String(), "hunter2")
}

/* ───────── 取得 ───────── */

func TestGetHandler_RoundTrip(t *testing.T) {
	mux := newMux(newStub())

	require.Equal(t, http.StatusOK, do(t, mux, http.MethodPost, "/articles", launchBody).Code)

	rr := do(t, mux, http.MethodGet, "/articles/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	want := map[string]any{"title": "Launch", "content": "We shipped.", "published_date": "2024-01-01"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestGetHandler_Idempotent(t *testing.T) {
	mux := newMux(newStub())
	do(t, mux, http.MethodPost, "/articles", launchBody)

	first := do(t, mux, http.MethodGet, "/articles/1", "")
	second := do(t, mux, http.MethodGet, "/articles/1", "")
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGetHandler_NotFound(t *testing.T) {
	rr := do(t, newMux(newStub()), http.MethodGet, "/articles/9999", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Article with id 9999 not found", rr.Body.String())
}

func TestGetHandler_StoreErrorIsNotNotFound(t *testing.T) {
	repo := newStub()
	repo.getErr = fmt.Errorf("Get: %w", sql.ErrConnDone)

	rr := do(t, newMux(repo), http.MethodGet, "/articles/1", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "Error fetching article: "))
	assert.Contains(t, rr.Body.String(), sql.ErrConnDone.Error())
}

func TestGetHandler_InvalidID(t *testing.T) {
	ids := []string{"abc", "-1", "1.5", "9223372036854775808", "%201"}

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			rr := do(t, newMux(newStub()), http.MethodGet, "/articles/"+id, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestGetHandler_AdversarialIDsAreNotFound(t *testing.T) {
	for _, id := range []string{"0", "9223372036854775807"} {
		t.Run(id, func(t *testing.T) {
			rr := do(t, newMux(newStub()), http.MethodGet, "/articles/"+id, "")
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Contains(t, rr.Body.String(), id)
		})
	}
}
