package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/echotrace/echotrace/internal/model"
)

const maxLoggedBody = 2048

// AckMessage is the fixed acknowledgement returned by the root route.
const AckMessage = "Hello from Echo!"

// Recorder receives captured requests. The server provides an implementation
// (the recent-request ring).
type Recorder interface {
	Record(model.CapturedRequest)
}

// Hello serves the root route: log method and path, log the header mapping,
// log the POST payload as best-effort text, then ack with the fixed JSON body.
type Hello struct {
	Log      zerolog.Logger
	Recorder Recorder
}

func (h *Hello) Handle(c echo.Context) error {
	r := c.Request()
	h.Log.Info().Str("method", r.Method).Str("path", r.URL.Path).Msg("incoming request")

	headers := flattenHeaders(r.Header)
	h.Log.Info().Interface("headers", headers).Msg("request headers")

	var body string
	if r.Method == http.MethodPost {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			// Best effort: log what was read, still ack.
			h.Log.Warn().Err(err).Msg("read payload")
		}
		body = strings.ToValidUTF8(string(raw), "�")
		preview := body
		if len(preview) > maxLoggedBody {
			preview = preview[:maxLoggedBody] + "..."
		}
		h.Log.Info().Str("payload", preview).Msg("request payload")
	}

	if h.Recorder != nil {
		h.Recorder.Record(model.CapturedRequest{
			ID:         uuid.New(),
			ReceivedAt: time.Now().UTC(),
			Method:     r.Method,
			Path:       r.URL.Path,
			Query:      r.URL.RawQuery,
			Headers:    headers,
			Body:       body,
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": AckMessage})
}

// flattenHeaders joins multi-valued headers so the log line carries one value per name.
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		out[name] = strings.Join(values, ", ")
	}
	return out
}
