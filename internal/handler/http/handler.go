package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

var errNoEmployeeClaim = errors.New("employee_id claim missing")

// claimsEmployeeID extracts the authenticated employee from the verified
// token. Self-service routes always act on this identity, never on a
// client-supplied one.
func claimsEmployeeID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", errNoEmployeeClaim
	}
	return employeeID, nil
}

func parseDateQuery(r *http.Request, name string) (time.Time, error) {
	return time.Parse("2006-01-02", r.URL.Query().Get(name))
}

// parseRangeQuery reads the start and end query params as an inclusive
// date range.
func parseRangeQuery(r *http.Request) (time.Time, time.Time, error) {
	start, err := parseDateQuery(r, "start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateQuery(r, "end")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end precedes start")
	}
	return start, end, nil
}

// parseYearQuery reads the year query param, defaulting to the current year.
func parseYearQuery(r *http.Request) int {
	if raw := r.URL.Query().Get("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			return year
		}
	}
	return time.Now().Year()
}
