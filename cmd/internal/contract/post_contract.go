package contract

const (
	MaxPostContentLength = 1_000_000
	MaxPostCategories    = 50
)

type PostResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
	Owner      int64    `json:"owner"`
}

// UserPostResponse is a post nested under its owner, so the owner is left out.
type UserPostResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// PostRequest is used for both creation and full replacement.
// Omitted content and categories default to empty.
type PostRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Content    string   `json:"content" validate:"max=1000000"`
	Categories []string `json:"categories" validate:"max=50,dive,required,max=10"`
}

// PatchPostRequest: a nil field is left untouched. Categories distinguishes
// an absent key (nil) from an explicit empty list (non-nil, len 0).
type PatchPostRequest struct {
	Title      *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Content    *string  `json:"content" validate:"omitempty,max=1000000"`
	Categories []string `json:"categories" validate:"omitempty,max=50,dive,required,max=10"`
}
