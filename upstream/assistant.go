package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

type SetAvailabilityRequest struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"time_slots"`
}

func (c *Client) SetAvailability(ctx context.Context, token string, req SetAvailabilityRequest) (*Message, error) {
	var out Message
	if err := c.do(ctx, http.MethodPost, "/assistant/availability", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAvailability(ctx context.Context, token string) ([]models.AvailabilityDay, error) {
	var out []models.AvailabilityDay
	if err := c.do(ctx, http.MethodGet, "/assistant/availability", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAssistantSessions lists the assistant's sessions; status is
// "upcoming" or "past".
func (c *Client) GetAssistantSessions(ctx context.Context, token, status string) ([]models.AssistantSession, error) {
	var out []models.AssistantSession
	path := "/assistant/sessions?status=" + url.QueryEscape(status)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSessionsByTime is the per-slot attendance query: every student booked
// for the assistant at the given date and time.
func (c *Client) GetSessionsByTime(ctx context.Context, token, date, timeOfDay string) ([]models.AttendanceEntry, error) {
	var out []models.AttendanceEntry
	path := fmt.Sprintf("/assistant/sessions/%s/%s", url.PathEscape(date), url.PathEscape(timeOfDay))
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkAttendance(ctx context.Context, token string, sessionID int, attendance string) (*Message, error) {
	body := map[string]string{"attendance": attendance}
	var out Message
	path := fmt.Sprintf("/assistant/sessions/%d/attendance", sessionID)
	if err := c.do(ctx, http.MethodPut, path, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
