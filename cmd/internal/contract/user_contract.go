package contract

// UserResponse is the projection any authenticated actor may read.
type UserResponse struct {
	FirstName  string               `json:"first_name"`
	LastName   string               `json:"last_name"`
	Email      string               `json:"email"`
	DateJoined string               `json:"date_joined"`
	Profile    *UserProfileResponse `json:"profile"`
	Posts      []*UserPostResponse  `json:"posts"`
}
