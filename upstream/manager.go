package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

type CreateUserRequest struct {
	FullName     string `json:"fullname"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	SubjectField string `json:"subject_field"`
}

func (c *Client) CreateUser(ctx context.Context, token string, req CreateUserRequest) (*Message, error) {
	var out Message
	if err := c.do(ctx, http.MethodPost, "/manager/users", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context, token, role string) ([]models.CenterUser, error) {
	var out []models.CenterUser
	path := "/manager/users?role=" + url.QueryEscape(role)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetStats(ctx context.Context, token string) (*models.CenterStats, error) {
	var out models.CenterStats
	if err := c.do(ctx, http.MethodGet, "/manager/stats", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
