package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"text/template"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type handlerResponse struct {
	Code      int
	Body      interface{}
	RequestID string
	Err       error
}

type returnHandler func(http.ResponseWriter, *http.Request) *handlerResponse

const logTemplate = "{{.Date}} {{.Method}} {{.Path}}{{if .Query}}?{{.Query}}{{end}} {{.Code}} ({{.Status}}){{if .RequestID}}, Request: {{.RequestID}}{{end}}{{if .Err}}, Error: {{.Err}}{{end}}\n"

var logTmpl = template.Must(template.New("log").Parse(logTemplate))

type logData struct {
	Date      string
	RequestID string
	Status    string
	Code      int
	Method    string
	Path      string
	Query     string
	Err       error
}

func logMiddleware(next returnHandler, writer io.Writer, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := next(w, r)

		err := logTmpl.Execute(writer, &logData{
			Date:      time.Now().Format("2006-01-02:15:04:05 -0700"),
			RequestID: resp.RequestID,
			Status:    http.StatusText(resp.Code),
			Code:      resp.Code,
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.RawQuery,
			Err:       resp.Err,
		})

		if err != nil {
			logger.Error("Could not write access log", zap.Error(err))
		}
	})
}

func requestIDMiddleware(next returnHandler) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		resp := next(w, r.WithContext(ctx))
		resp.RequestID = id

		return resp
	}
}

func jsonMiddleware(next returnHandler) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		w.Header().Set("Content-Type", "application/json")
		resp := next(w, r)

		w.WriteHeader(resp.Code)
		if err := json.NewEncoder(w).Encode(resp.Body); err != nil {
			resp.Err = err
		}
		return resp
	}
}
