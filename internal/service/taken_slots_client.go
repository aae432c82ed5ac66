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

// TakenSlotsClient fetches the times already consumed by booked
// appointments from the appointment service. The doctor service subtracts
// these from the enumerated slots when listing daily availability.
type TakenSlotsClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewTakenSlotsClient(baseURL string, timeout time.Duration, log *logrus.Logger) *TakenSlotsClient {
	return &TakenSlotsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// TakenTimes returns the HH:MM start times booked for the doctor on the
// given date, as reported by the appointment service.
func (c *TakenSlotsClient) TakenTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	url := fmt.Sprintf("%s/api/v1/appointments/taken-appointments/%s?date=%s",
		c.baseURL, doctorID, date.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build taken-slots request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("taken-slots request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("taken-slots request returned status %d", resp.StatusCode)
	}

	var times []string
	if err := json.NewDecoder(resp.Body).Decode(&times); err != nil {
		return nil, fmt.Errorf("decode taken-slots response: %w", err)
	}

	c.log.Debugf("Taken slots: doctor=%s, date=%s, count=%d", doctorID, date.Format("2006-01-02"), len(times))
	return times, nil
}
