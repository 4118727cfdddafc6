package statement_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"article-service/internal/domain/entity"
	"article-service/internal/infra/adapter/persistence/statement"
)

/* ──────────────────────────── Builder ──────────────────────────── */

func TestBuilder_BindNumbersPlaceholdersInOrder(t *testing.T) {
	got := statement.NewBuilder("SELECT 1 WHERE a = ", statement.Dollar).
		Bind("x").
		Push(" AND b = ").
		Bind(42).
		Build()

	want := statement.Statement{
		SQL:  "SELECT 1 WHERE a = $1 AND b = $2",
		Args: []any{"x", 42},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPushValues_EmptyRecordsAppendsNothing(t *testing.T) {
	got := statement.PushValues(statement.NewBuilder("INSERT INTO t (a)", statement.Question), []int{},
		func(row *statement.Tuple, v int) { row.Bind(v) }).Build()

	if got.SQL != "INSERT INTO t (a)" {
		t.Errorf("SQL = %q, want %q", got.SQL, "INSERT INTO t (a)")
	}
	if len(got.Args) != 0 {
		t.Errorf("Args = %v, want empty", got.Args)
	}
}

/* ──────────────────────────── ArticleStatements ──────────────────────────── */

func TestArticleStatements_Insert(t *testing.T) {
	a := entity.Article{Title: "Launch", Content: "We shipped.", PublishedDate: "2024-01-01"}

	tests := []struct {
		name        string
		placeholder statement.Placeholder
		records     []entity.Article
		wantSQL     string
		wantArgs    []any
	}{
		{
			name:        "postgres single record",
			placeholder: statement.Dollar,
			records:     []entity.Article{a},
			wantSQL:     "INSERT INTO articles (title, content, published_date) VALUES ($1, $2, $3)",
			wantArgs:    []any{"Launch", "We shipped.", "2024-01-01"},
		},
		{
			name:        "postgres batch",
			placeholder: statement.Dollar,
			records:     []entity.Article{a, {Title: "b", Content: "c", PublishedDate: "d"}},
			wantSQL:     "INSERT INTO articles (title, content, published_date) VALUES ($1, $2, $3), ($4, $5, $6)",
			wantArgs:    []any{"Launch", "We shipped.", "2024-01-01", "b", "c", "d"},
		},
		{
			name:        "sqlite single record",
			placeholder: statement.Question,
			records:     []entity.Article{a},
			wantSQL:     "INSERT INTO articles (title, content, published_date) VALUES (?, ?, ?)",
			wantArgs:    []any{"Launch", "We shipped.", "2024-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statement.NewArticleStatements(tt.placeholder).Insert(tt.records...)
			if got.SQL != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", got.SQL, tt.wantSQL)
			}
			if diff := cmp.Diff(tt.wantArgs, got.Args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArticleStatements_InsertNeverInlinesValues(t *testing.T) {
	hostile := entity.Article{
		Title:         "a'); DROP TABLE articles;--",
		Content:       "x' OR '1'='1",
		PublishedDate: "2024-01-01'); --",
	}

	got := statement.NewArticleStatements(statement.Dollar).Insert(hostile)

	for _, v := range []string{hostile.Title, hostile.Content, hostile.PublishedDate} {
		if strings.Contains(got.SQL, v) {
			t.Errorf("SQL %q contains raw value %q", got.SQL, v)
		}
	}
	if diff := cmp.Diff([]any{hostile.Title, hostile.Content, hostile.PublishedDate}, got.Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestArticleStatements_Select(t *testing.T) {
	tests := []struct {
		name        string
		placeholder statement.Placeholder
		wantSQL     string
	}{
		{"postgres", statement.Dollar, "SELECT title, content, published_date FROM articles WHERE id = $1"},
		{"sqlite", statement.Question, "SELECT title, content, published_date FROM articles WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statement.NewArticleStatements(tt.placeholder).Select(9999)
			if got.SQL != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", got.SQL, tt.wantSQL)
			}
			if diff := cmp.Diff([]any{int64(9999)}, got.Args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// The SQL text must be identical for every key so no key value can alter it.
func TestArticleStatements_SelectTextIndependentOfKey(t *testing.T) {
	m := statement.NewArticleStatements(statement.Dollar)
	base := m.Select(1).SQL
	for _, key := range []int64{0, -1, 9223372036854775807, -9223372036854775808} {
		if got := m.Select(key).SQL; got != base {
			t.Errorf("Select(%d).SQL = %q, want %q", key, got, base)
		}
	}
}
