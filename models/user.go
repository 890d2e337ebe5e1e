package models

const UsersCollection = "users"

type UserProfile struct {
	Uid          string `json:"uid"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Response struct (what we return to clients — never the password hash)
type UserResponse struct {
	Uid      string `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (u *UserProfile) ToResponse() UserResponse {
	return UserResponse{
		Uid:      u.Uid,
		Email:    u.Email,
		Username: u.Username,
	}
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
