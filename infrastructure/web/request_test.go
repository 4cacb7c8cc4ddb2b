package web

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

type decodeModel struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type validatedModel struct {
	Name string `json:"name"`
}

var errNameRequired = errors.New("name is required")

func (m validatedModel) Validate() error {
	if m.Name == "" {
		return errNameRequired
	}
	return nil
}

func TestDecode(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"a","count":2}`))

	var model decodeModel
	if err := Decode(req, &model); err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if model.Name != "a" || model.Count != 2 {
		t.Errorf("Decode: got %+v", model)
	}
}

func TestDecodeEmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", nil)

	var model decodeModel
	if err := Decode(req, &model); err == nil {
		t.Fatal("Decode: expected error for empty body")
	}
}

func TestDecodeMalformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	var model decodeModel
	if err := Decode(req, &model); err == nil {
		t.Fatal("Decode: expected error for malformed json")
	}
}

func TestDecodeRunsValidation(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":""}`))

	var model validatedModel
	err := Decode(req, &model)
	if !errors.Is(err, errNameRequired) {
		t.Fatalf("Decode: got error %v, want wrapped %v", err, errNameRequired)
	}
}

func TestParam(t *testing.T) {
	req := httptest.NewRequest("GET", "/tasks/9", nil)
	req.SetPathValue("task_id", "9")

	if got := Param(req, "task_id"); got != "9" {
		t.Errorf("Param: got %q, want %q", got, "9")
	}
}

func TestQueryParam(t *testing.T) {
	req := httptest.NewRequest("GET", "/tasks?limit=5", nil)

	if got := QueryParam(req, "limit"); got != "5" {
		t.Errorf("QueryParam: got %q, want %q", got, "5")
	}
}
