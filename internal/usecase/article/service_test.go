package article_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-service/internal/domain/entity"
	artUC "article-service/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

// 最小限のインメモリ ArticleRepository
type stubRepo struct {
	mu     sync.Mutex
	data   map[int64]*entity.Article
	nextID int64
	err    error // 強制的にエラーを返したいとき用
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	stored := *a
	stored.ID = s.nextID
	s.nextID++
	s.data[stored.ID] = &stored
	return nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.data[id]
	if !ok {
		return nil, fmt.Errorf("Get: %w", entity.ErrNotFound)
	}
	copied := *a
	return &copied, nil
}

/* ───────── テスト ───────── */

func TestService_CreateThenGet(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, artUC.CreateInput{
		Title: "Launch", Content: "We shipped.", PublishedDate: "2024-01-01",
	}))

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &entity.Article{ID: 1, Title: "Launch", Content: "We shipped.", PublishedDate: "2024-01-01"}, got)
}

func TestService_Create_DoesNotValidate(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	// Constraint enforcement belongs to the store.
	assert.NoError(t, svc.Create(context.Background(), artUC.CreateInput{}))
}

func TestService_Create_RepoError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("connection refused")
	svc := artUC.Service{Repo: stub}

	err := svc.Create(context.Background(), artUC.CreateInput{Title: "t"})
	require.Error(t, err)
	assert.ErrorIs(t, err, stub.err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestService_Get(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		repoErr error
		wantErr error
	}{
		{name: "missing row", id: 9999, wantErr: artUC.ErrArticleNotFound},
		{name: "negative id", id: -1, wantErr: artUC.ErrInvalidArticleID},
		{name: "store unreachable", id: 1, repoErr: sql.ErrConnDone, wantErr: sql.ErrConnDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			stub.err = tt.repoErr
			svc := artUC.Service{Repo: stub}

			got, err := svc.Get(context.Background(), tt.id)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Get_StoreFailureIsNotNotFound(t *testing.T) {
	stub := newStub()
	stub.err = sql.ErrConnDone
	svc := artUC.Service{Repo: stub}

	_, err := svc.Get(context.Background(), 1)
	assert.False(t, errors.Is(err, artUC.ErrArticleNotFound))
}
