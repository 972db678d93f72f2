package contract

type CategoryResponse struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Tag  string `json:"tag" validate:"required,min=1,max=10,nospaces"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateCategoryRequest replaces the category. Tag is optional and must match the path.
type UpdateCategoryRequest struct {
	Tag  *string `json:"tag"`
	Name string  `json:"name" validate:"required,min=1,max=100"`
}

type PatchCategoryRequest struct {
	Tag  *string `json:"tag"`
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}
