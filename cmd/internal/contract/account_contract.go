package contract

// CreateUserRequest is what the operator tool sends to provision a user.
type CreateUserRequest struct {
	Username  string `validate:"required,min=2,max=150,nospaces"`
	Email     string `validate:"required,email"`
	FirstName string `validate:"max=150"`
	LastName  string `validate:"max=150"`
	Admin     bool
}
