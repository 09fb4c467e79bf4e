package upstream

import (
	"context"
	"net/http"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

func (c *Client) CreateCenter(ctx context.Context, token, name string) (*Message, error) {
	body := map[string]string{"name": name}
	var out Message
	if err := c.do(ctx, http.MethodPost, "/admin/learning-centers", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCenters(ctx context.Context, token string) ([]models.LearningCenter, error) {
	var out []models.LearningCenter
	if err := c.do(ctx, http.MethodGet, "/admin/learning-centers", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
