package models

// RegisterRequest has no role field; new accounts are always members.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type CreateCommentRequest struct {
	Content string `form:"content" json:"content" validate:"required,max=5000"`
}

// DiscussionInput is the validated view of a DiscussionForm on create.
type DiscussionInput struct {
	Title       string `validate:"required,max=255"`
	Description string `validate:"required"`
	Category    string `validate:"required,max=100"`
}

// Input flattens the form for validation; missing fields become empty strings.
func (f DiscussionForm) Input() DiscussionInput {
	return DiscussionInput{
		Title:       deref(f.Title),
		Description: deref(f.Description),
		Category:    deref(f.Category),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
