package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ncobase/microservicio/ecode"
)

// Exception is the failure body. Status picks the HTTP status line and is
// not serialized.
type Exception struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

func (e *Exception) Error() string { return e.Message }

func newException(status, code int, message string, errs ...any) *Exception {
	e := &Exception{Status: status, Code: code, Message: message}
	if len(errs) > 0 {
		e.Errors = errs[0]
	}
	return e
}

// Success writes data with 200 OK.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode writes data as the body. A string payload is wrapped as
// {"message": s}; no payload yields {"message": "ok"}. Error statuses are
// written through Fail.
func WithStatusCode(w http.ResponseWriter, status int, data ...any) {
	var payload any
	if len(data) > 0 {
		payload = data[0]
	}

	if status >= http.StatusBadRequest {
		e := &Exception{Status: status}
		if msg, ok := payload.(string); ok {
			e.Message = msg
		} else {
			e.Errors = payload
		}
		Fail(w, e)
		return
	}

	switch v := payload.(type) {
	case nil:
		payload = map[string]string{"message": ecode.Text(ecode.OK)}
	case string:
		payload = map[string]string{"message": v}
	}
	writeJSON(w, status, payload)
}

// Fail writes e as the error body. Missing fields fall back to 400, the
// request error code and its default text; a nil e is a 500.
func Fail(w http.ResponseWriter, e *Exception) {
	if e == nil {
		e = InternalServer("")
	}
	out := *e
	if out.Status == 0 {
		out.Status = http.StatusBadRequest
	}
	if out.Code == 0 {
		out.Code = ecode.RequestErr
	}
	if out.Message == "" {
		out.Message = ecode.Text(out.Code)
	}
	writeJSON(w, out.Status, &out)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
