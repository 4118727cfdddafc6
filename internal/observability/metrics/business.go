package metrics

import "time"

// Lookup outcomes reported by RecordArticleLookup.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
)

// RecordArticleCreated records the result of an article create operation.
func RecordArticleCreated(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	ArticlesCreatedTotal.WithLabelValues(status).Inc()
}

// RecordArticleLookup records the outcome of a lookup by identifier.
func RecordArticleLookup(outcome string) {
	ArticleLookupsTotal.WithLabelValues(outcome).Inc()
}

// RecordDBQuery records the duration of a database statement.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
