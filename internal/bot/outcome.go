package bot

import "net/http"

// Outcome classifies how processing one update concluded, before the result
// is mapped to an HTTP status code.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeBadRequest
	OutcomeUnauthorized
	OutcomeInternalError
)

// StatusCode maps the outcome to its bounded HTTP status code
func (o Outcome) StatusCode() int {
	switch o {
	case OutcomeBadRequest:
		return http.StatusBadRequest
	case OutcomeUnauthorized:
		return http.StatusUnauthorized
	case OutcomeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeBadRequest:
		return "bad-request"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeInternalError:
		return "internal-error"
	default:
		return "unknown"
	}
}
