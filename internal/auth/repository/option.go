package repository

// UpsertUserOptions holds parameters for inserting or refreshing a User by email.
type UpsertUserOptions struct {
	Email                 string
	RefreshTokenEncrypted string
}

// GetUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetUserOptions struct {
	ID    string
	Email string
}
