package models

// User is the public profile of an authenticated account.
// The ID equals the subject of the user's bearer token.
type User struct {
	BaseModel
	Username    string `json:"username" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	DisplayName string `json:"display_name" gorm:"size:100" validate:"max=100"`
	AvatarURL   string `json:"avatar_url" gorm:"size:500" validate:"omitempty,url,max=500"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
