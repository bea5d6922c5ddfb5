// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/gradebook/templates"
)

func newTestRenderer(t *testing.T) *templates.Renderer {
	t.Helper()

	tpl, err := templates.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return tpl
}

func TestIndex(t *testing.T) {
	h := NewPageHandler(newTestRenderer(t))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	h.Index(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Expected HTML content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "/students") {
		t.Error("Expected the landing page to link to /students")
	}
}

func TestHello_DefaultName(t *testing.T) {
	h := NewPageHandler(newTestRenderer(t))

	req := httptest.NewRequest("GET", "/hello2", nil)
	w := httptest.NewRecorder()

	h.Hello(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Hello, World!") {
		t.Errorf("Expected default greeting, got body: %s", w.Body.String())
	}
}

func TestHello_QueryName(t *testing.T) {
	h := NewPageHandler(newTestRenderer(t))

	req := httptest.NewRequest("GET", "/hello2?name=Sam", nil)
	w := httptest.NewRecorder()

	h.Hello(w, req)

	if !strings.Contains(w.Body.String(), "Hello, Sam!") {
		t.Errorf("Expected greeting for Sam, got body: %s", w.Body.String())
	}
}
