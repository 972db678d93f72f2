package handler

import (
	"io"
	"net/url"

	"github.com/labstack/echo/v4"
)

// readBody returns the raw request body. Decoding is left to the
// representation layer, which must only run after authorization.
func readBody(c echo.Context) ([]byte, error) {
	return io.ReadAll(c.Request().Body)
}

// requestURL rebuilds the absolute URL of the request, used for page links.
func requestURL(c echo.Context) *url.URL {
	req := c.Request()
	u := *req.URL
	u.Scheme = c.Scheme()
	u.Host = req.Host
	return &u
}
