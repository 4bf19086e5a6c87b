package review

import "time"

// Review is one user's opinion of one game. UserName is a display-name
// snapshot taken at creation, never refreshed from the users table.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	GameID    string    `json:"game_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Helpful   int       `json:"helpful"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRequest is the submit-review payload.
// swagger:model CreateReviewRequest
type CreateRequest struct {
	GameID  string `json:"game_id" example:"1"`
	Rating  int    `json:"rating"  example:"5"`
	Title   string `json:"title"   example:"A masterpiece"`
	Content string `json:"content" example:"Hundreds of hours in and still finding secrets."`
}
