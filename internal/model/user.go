package model

type UserRole string

const (
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	UID       string   `gorm:"primaryKey;size:64" json:"uid"`
	Name      string   `gorm:"size:100;not null" json:"name"`
	Email     string   `gorm:"size:100;unique;not null" json:"email"`
	Password  string   `gorm:"size:100" json:"-"`
	Role      UserRole `gorm:"type:enum('teacher','admin');default:'teacher'" json:"role"`
	SchoolID  string   `gorm:"size:64;index" json:"schoolId"`
	AvatarURL string   `gorm:"size:255" json:"avatarUrl,omitempty"`
	CreatedAt string   `gorm:"size:10" json:"createdAt,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserUpdate carries a partial profile merge. Nil means "leave
// unchanged".
type UserUpdate struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatarUrl"`
}
