package get_csrf_token

import "net/http"

type CsrfIssuer interface {
	Issue(w http.ResponseWriter, r *http.Request) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
