package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// isAvailablePathFormat matches the doctor service route; the date-time
// segment is an ISO-8601 local date time without zone offset.
const isAvailablePathFormat = "%s/api/v1/doctor/availability/isAvailable/%s/%s"

// AvailabilityClient queries the doctor service for availability. The call
// crosses a service boundary, so every transport failure is surfaced as an
// error and callers must treat it as "unavailable".
type AvailabilityClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewAvailabilityClient(baseURL string, timeout time.Duration, log *logrus.Logger) *AvailabilityClient {
	return &AvailabilityClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// IsDoctorAvailable asks the doctor service whether the doctor accepts
// appointments at the given instant. Returns an error on timeout,
// connection failure, non-2xx status or an unreadable body; a definitive
// true/false is returned only for a 2xx boolean response.
func (c *AvailabilityClient) IsDoctorAvailable(ctx context.Context, doctorID uuid.UUID, dateTime time.Time) (bool, error) {
	url := fmt.Sprintf(isAvailablePathFormat, c.baseURL, doctorID, dateTime.Format("2006-01-02T15:04:05"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("build availability request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("availability check request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("availability check returned status %d", resp.StatusCode)
	}

	var available bool
	if err := json.NewDecoder(resp.Body).Decode(&available); err != nil {
		return false, fmt.Errorf("decode availability response: %w", err)
	}

	c.log.Debugf("Availability check: doctor=%s, dateTime=%s, available=%v", doctorID, dateTime, available)
	return available, nil
}
