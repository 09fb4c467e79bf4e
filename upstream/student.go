package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

// ListAssistants returns assistants matching the student's subject field,
// each with its current open-slot snapshot.
func (c *Client) ListAssistants(ctx context.Context, token string) ([]models.AssistantProfile, error) {
	var out []models.AssistantProfile
	if err := c.do(ctx, http.MethodGet, "/student/assistants", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type BookSessionRequest struct {
	AssistantID int    `json:"assistant_id"`
	DateTime    string `json:"datetime"`
}

func (c *Client) BookSession(ctx context.Context, token string, req BookSessionRequest) (*Message, error) {
	var out Message
	if err := c.do(ctx, http.MethodPost, "/student/sessions", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetStudentSessions(ctx context.Context, token, status string) ([]models.StudentSession, error) {
	var out []models.StudentSession
	path := "/student/sessions?status=" + url.QueryEscape(status)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type RateSessionRequest struct {
	SessionID      int    `json:"session_id"`
	Knowledge      int    `json:"knowledge"`
	Communication  int    `json:"communication"`
	Patience       int    `json:"patience"`
	Engagement     int    `json:"engagement"`
	ProblemSolving int    `json:"problem_solving"`
	Comments       string `json:"comments,omitempty"`
}

func (c *Client) RateSession(ctx context.Context, token string, req RateSessionRequest) (*Message, error) {
	var out Message
	if err := c.do(ctx, http.MethodPost, "/student/ratings", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
