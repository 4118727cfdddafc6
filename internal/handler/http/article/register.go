package article

import (
	"net/http"

	artUC "article-service/internal/usecase/article"
)

// Register registers the article routes with the given mux.
func Register(mux *http.ServeMux, svc artUC.Service) {
	mux.Handle("POST /articles", CreateHandler{svc})
	mux.Handle("GET /articles/{id}", GetHandler{svc})
}
