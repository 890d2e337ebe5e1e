package models

const GroupsCollection = "groups"

// Group is a named circle of users sharing one shopping list.
// MemberUserUids is a presence set; the membership index mirrors it for the
// reverse lookup.
type Group struct {
	Uid            string          `json:"uid"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	MemberUserUids map[string]bool `json:"memberUserUids,omitempty"`
}

// Request structs
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddMemberRequest struct {
	UserUid string `json:"user_uid"`
	Email   string `json:"email"`
}

type InviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Response structs
type GroupResponse struct {
	Uid         string         `json:"uid"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Members     []UserResponse `json:"members"`
}
