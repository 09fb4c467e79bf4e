package upstream

import (
	"context"
	"net/http"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

type LoginRequest struct {
	Phone            string `json:"phone"`
	Password         string `json:"password"`
	LearningCenterID *int   `json:"learning_center_id,omitempty"`
}

type LoginResponse struct {
	Token    string          `json:"token"`
	UserInfo models.UserInfo `json:"user_info"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) (*Message, error) {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	var out Message
	if err := c.do(ctx, http.MethodPut, "/auth/change-password", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ProfileUpdate struct {
	FullName string `json:"fullname,omitempty"`
	Phone    string `json:"phone,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req ProfileUpdate) (*models.UserInfo, error) {
	var out models.UserInfo
	if err := c.do(ctx, http.MethodPut, "/auth/update-profile", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Message is the bare acknowledgment shape most upstream mutations return.
type Message struct {
	Message string `json:"message"`
}
