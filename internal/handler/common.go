package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

var errNoUser = errors.New("no authenticated user in context")

// getUserID extracts the user ID stored by the JWT middleware. JSON numbers
// decode as float64; some clients carry the subject as a string.
func getUserID(c echo.Context) (uint64, error) {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v), nil
	case uint64:
		return v, nil
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errNoUser
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
