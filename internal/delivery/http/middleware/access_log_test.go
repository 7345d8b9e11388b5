package middleware

import (
	"bytes"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

// Access log registered before the error middleware, matching the wiring in
// internal/app, so the logged status is the one the client receives.
func newLoggedApp(buf *bytes.Buffer) *fiber.App {
	logger := log.New(buf, "", 0)

	f := fiber.New(fiber.Config{})
	f.Use(NewAccessLogMiddleware(logger).Middleware())
	f.Use(NewErrorMiddleware(logger).Middleware())

	f.Get("/ok", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	f.Get("/denied", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusUnauthorized, "candidate login required", nil, nil)
	})
	return f
}

func TestAccessLog_RecordsFinalStatusOnErrorPath(t *testing.T) {
	var buf bytes.Buffer
	f := newLoggedApp(&buf)

	resp, err := f.Test(httptest.NewRequest("GET", "/denied", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	line := buf.String()
	if !strings.Contains(line, "status=401") {
		t.Fatalf("expected access log to carry the normalized status, got %q", line)
	}
	if strings.Contains(line, "status=200") {
		t.Fatalf("error path must not be logged as success: %q", line)
	}
}

func TestAccessLog_RecordsSuccessStatus(t *testing.T) {
	var buf bytes.Buffer
	f := newLoggedApp(&buf)

	if _, err := f.Test(httptest.NewRequest("GET", "/ok", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	if !strings.Contains(buf.String(), "status=200") {
		t.Fatalf("expected status=200 in access log, got %q", buf.String())
	}
}
