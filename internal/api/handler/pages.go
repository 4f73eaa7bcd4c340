package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Page returns a handler serving the minimal HTML shell for a page route.
// The browser client renders the actual UI against the third-party movie
// catalog; the server only needs these routes to exist so the route guard
// has navigation requests to classify.
func Page(title string) echo.HandlerFunc {
	shell := fmt.Sprintf(`<!doctype html><html><head><title>%s · movienight</title></head><body><div id="root"></div></body></html>`, title)
	return func(c echo.Context) error {
		return c.HTML(http.StatusOK, shell)
	}
}
