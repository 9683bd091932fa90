package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// formErrors converts validator errors into the field-keyed error map the
// frontend expects: {"errors": {"field": ["message", ...]}}.
func formErrors(err error) map[string][]string {
	errs := make(map[string][]string)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["non_field_errors"] = []string{err.Error()}
		return errs
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "This field is required"
		case "email":
			msg = "Enter a valid email address"
		case "max":
			msg = fmt.Sprintf("Ensure this field has at most %s characters", fe.Param())
		case "min":
			msg = fmt.Sprintf("Ensure this field has at least %s characters", fe.Param())
		case "oneof":
			msg = fmt.Sprintf("Value must be one of: %s", fe.Param())
		default:
			msg = fmt.Sprintf("Invalid value (%s)", fe.Tag())
		}
		errs[field] = append(errs[field], msg)
	}
	return errs
}

// locationError is the 400 body for a failed geocode: the error is pinned to
// a "location" field so the UI can prompt for a more specific address.
func locationError() echo.Map {
	return echo.Map{"errors": map[string][]string{"location": {"Location not found"}}}
}

// currentUserID reads the authenticated user's ID placed on the context by
// the JWT middleware.
func currentUserID(c echo.Context) uint {
	id, _ := c.Get("userID").(uint)
	return id
}

// currentUsername reads the authenticated username from the context.
func currentUsername(c echo.Context) string {
	name, _ := c.Get("username").(string)
	return name
}
