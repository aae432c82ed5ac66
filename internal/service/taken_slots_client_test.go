package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTakenTimes(t *testing.T) {
	doctorID := uuid.New()
	date := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	var gotPath, gotDate string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDate = r.URL.Query().Get("date")
		fmt.Fprint(w, `["09:30","11:00","14:00"]`)
	}))
	defer server.Close()

	client := NewTakenSlotsClient(server.URL, 2*time.Second, testLogger())
	times, err := client.TakenTimes(context.Background(), doctorID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:30", "11:00", "14:00"}
	if !reflect.DeepEqual(times, want) {
		t.Errorf("times = %v, want %v", times, want)
	}
	if wantPath := "/api/v1/appointments/taken-appointments/" + doctorID.String(); gotPath != wantPath {
		t.Errorf("request path = %q, want %q", gotPath, wantPath)
	}
	if gotDate != "2026-08-24" {
		t.Errorf("date query = %q, want 2026-08-24", gotDate)
	}
}

func TestTakenTimesEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewTakenSlotsClient(server.URL, 2*time.Second, testLogger())
	times, err := client.TakenTimes(context.Background(), uuid.New(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 0 {
		t.Errorf("expected no times, got %v", times)
	}
}

func TestTakenTimesNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewTakenSlotsClient(server.URL, 2*time.Second, testLogger())
	if _, err := client.TakenTimes(context.Background(), uuid.New(), time.Now()); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestTakenTimesMalformedBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"times":`)
	}))
	defer server.Close()

	client := NewTakenSlotsClient(server.URL, 2*time.Second, testLogger())
	if _, err := client.TakenTimes(context.Background(), uuid.New(), time.Now()); err == nil {
		t.Fatal("expected error for an unreadable body")
	}
}
