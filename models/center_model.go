package models

type LearningCenter struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	TotalUsers  int    `json:"total_users"`
	CreatedDate string `json:"created_date"`
}
