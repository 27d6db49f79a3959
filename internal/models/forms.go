package models

// RegisterInput is submitted by the registration form.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,max=64,email"`
	Username  string `json:"username" validate:"required,max=64,username"`
	Password  string `json:"password" validate:"required"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

// BrewerInput creates a brewer through the API. Role is a role name; the
// default role is used when it is empty.
type BrewerInput struct {
	Email     string `json:"email" validate:"required,max=64,email"`
	Username  string `json:"username" validate:"required,max=64,username"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"max=64"`
	Confirmed bool   `json:"confirmed"`
}

// LoginInput is submitted by the login form.
type LoginInput struct {
	Email      string `validate:"required,max=64,email"`
	Password   string `validate:"required"`
	RememberMe bool
}

// ProfileInput is what a brewer may edit on their own profile.
type ProfileInput struct {
	Name     string `validate:"max=64"`
	Location string `validate:"max=64"`
	AboutMe  string
}

// AdminProfileInput is what an administrator may edit on any profile.
type AdminProfileInput struct {
	Email     string `validate:"required,max=64,email"`
	Username  string `validate:"required,max=64,username"`
	Confirmed bool
	RoleID    int64 `validate:"required"`
	Name      string `validate:"max=64"`
	Location  string `validate:"max=64"`
	AboutMe   string
}

// ChangePasswordInput is submitted by a logged in brewer.
type ChangePasswordInput struct {
	OldPassword string `validate:"required"`
	Password    string `validate:"required"`
	Password2   string `validate:"required,eqfield=Password"`
}

// ResetRequestInput asks for a password reset mail.
type ResetRequestInput struct {
	Email string `validate:"required,max=64,email"`
}

// ResetInput sets a new password with a reset token.
type ResetInput struct {
	Email     string `validate:"required,max=64,email"`
	Password  string `validate:"required"`
	Password2 string `validate:"required,eqfield=Password"`
}

// ChangeEmailInput asks for an email change confirmation mail.
type ChangeEmailInput struct {
	Email    string `validate:"required,max=64,email"`
	Password string `validate:"required"`
}

// PotInput brews a pot of the given tea.
type PotInput struct {
	Tea int64 `json:"tea" validate:"required"`
}
