package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/devl00p/async43/src/model"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestPrintRecordJSONIsValid(t *testing.T) {
	rec := &model.Record{Domain: "example.com", Status: []string{"active"}}

	output = "json"
	r, w, _ := os.Pipe()
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	if err := printRecord(rec); err != nil {
		t.Fatalf("printRecord: %v", err)
	}
	w.Close()

	var buf bytes.Buffer
	buf.ReadFrom(r)

	var got model.Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output was not valid JSON: %v\n%s", err, buf.String())
	}
	if got.Domain != "example.com" {
		t.Errorf("expected domain round-tripped, got %q", got.Domain)
	}
}

func TestPrintRecordTableIncludesDomain(t *testing.T) {
	rec := &model.Record{Domain: "example.com", Registrar: model.Contact{Name: "Example Registrar"}}

	output = "table"
	r, w, _ := os.Pipe()
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	if err := printRecord(rec); err != nil {
		t.Fatalf("printRecord: %v", err)
	}
	w.Close()

	var buf bytes.Buffer
	buf.ReadFrom(r)

	if !strings.Contains(buf.String(), "example.com") {
		t.Errorf("expected domain in table output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Example Registrar") {
		t.Errorf("expected registrar name in table output, got %q", buf.String())
	}
}
