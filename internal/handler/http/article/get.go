package article

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"article-service/internal/handler/http/pathutil"
	"article-service/internal/handler/http/respond"
	"article-service/internal/observability/logging"
	artUC "article-service/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたIDの記事を取得します
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} DTO "記事詳細"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Article with id <id> not found"
// @Failure      500 {string} string "Error fetching article"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := pathutil.ParseID(raw)
	if err != nil {
		writeText(w, http.StatusBadRequest, fmt.Sprintf("Invalid URL: %v", err))
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound):
		code, msg := notFound(id)
		writeText(w, code, msg)
		return
	case errors.Is(err, artUC.ErrInvalidArticleID):
		writeText(w, http.StatusBadRequest, fmt.Sprintf("Invalid URL: %v", err))
		return
	case err != nil:
		logging.FromContext(r.Context()).Error("fetch article failed",
			slog.Int64("id", id), slog.Any("error", err))
		code, msg := internalServerError("fetching", err)
		writeText(w, code, msg)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
