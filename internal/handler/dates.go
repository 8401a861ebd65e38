package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/parth-samanta/LogMyFit/internal/validation"
)

// resolveDate picks the calendar date for a request. Precedence is
// contractual: explicit query parameter, then JSON body field, then the
// server's current local date.
func resolveDate(r *http.Request, bodyDate string) (string, error) {
	qd := strings.TrimSpace(r.URL.Query().Get("date"))
	if qd != "" {
		return qd, validation.ValidateDate(qd)
	}

	bodyDate = strings.TrimSpace(bodyDate)
	if bodyDate != "" {
		return bodyDate, validation.ValidateDate(bodyDate)
	}

	return time.Now().Format(validation.DateLayout), nil
}
