package pathutil_test

import (
	"fmt"

	"article-service/internal/handler/http/pathutil"
)

// ExampleNormalizePath demonstrates how path normalization works
// to prevent metrics label cardinality explosion.
func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/articles/123"))
	fmt.Println(pathutil.NormalizePath("/articles/456"))
	fmt.Println(pathutil.NormalizePath("/health"))

	// Output:
	// /articles/:id
	// /articles/:id
	// /health
}

func ExampleParseID() {
	id, err := pathutil.ParseID("42")
	fmt.Println(id, err)

	_, err = pathutil.ParseID("-1")
	fmt.Println(err)

	// Output:
	// 42 <nil>
	// invalid id
}
