package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"article-service/internal/observability/logging"
	artUC "article-service/internal/usecase/article"
)

// CreatedMessage is the body returned after a successful insert.
const CreatedMessage = "Article created successfully"

type CreateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。ID はストアが採番します
// @Tags         articles
// @Accept       json
// @Produce      plain
// @Param        article body DTO true "記事情報"
// @Success      200 {string} string "Article created successfully"
// @Failure      400 {string} string "Bad request - malformed JSON"
// @Failure      413 {string} string "Request body too large"
// @Failure      422 {string} string "Unprocessable entity - missing field"
// @Failure      500 {string} string "Error creating article"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeText(w, decodeStatus(err), fmt.Sprintf("Failed to parse the request body as JSON: %v", err))
		return
	}
	if field := req.missingField(); field != "" {
		writeText(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Failed to deserialize the JSON body: missing field `%s`", field))
		return
	}

	if err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:         *req.Title,
		Content:       *req.Content,
		PublishedDate: *req.PublishedDate,
	}); err != nil {
		logging.FromContext(r.Context()).Error("create article failed", slog.Any("error", err))
		code, msg := internalServerError("creating", err)
		writeText(w, code, msg)
		return
	}
	writeText(w, http.StatusOK, CreatedMessage)
}

// errTrailingData is returned when the body holds more than one JSON value.
var errTrailingData = errors.New("trailing characters after JSON value")

// decodeBody decodes exactly one JSON value from body into v.
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return errTrailingData
	}
	return nil
}

// decodeStatus distinguishes syntactically broken bodies (400) from
// well-formed JSON of the wrong shape (422).
func decodeStatus(err error) int {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}
