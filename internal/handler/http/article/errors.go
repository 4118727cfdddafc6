package article

import (
	"fmt"
	"net/http"

	"article-service/internal/handler/http/respond"
)

// notFound maps a lookup that matched no row to its response.
func notFound(id int64) (int, string) {
	return http.StatusNotFound, fmt.Sprintf("Article with id %d not found", id)
}

// internalServerError maps a store failure during action ("creating",
// "fetching") to its response. Credentials in err are masked.
func internalServerError(action string, err error) (int, string) {
	return http.StatusInternalServerError,
		fmt.Sprintf("Error %s article: %s", action, respond.SanitizeError(err))
}

func writeText(w http.ResponseWriter, code int, msg string) {
	respond.Text(w, code, msg)
}
