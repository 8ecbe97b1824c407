package model

type LicenseStatus string

const (
	LicenseActive    LicenseStatus = "active"
	LicenseTrial     LicenseStatus = "trial"
	LicenseExpired   LicenseStatus = "expired"
	LicenseSuspended LicenseStatus = "suspended"
)

// School is the per-tenant singleton. It is never deleted, only
// updated through the settings operations.
// swagger:model School
type School struct {
	SchoolID      string        `gorm:"primaryKey;size:64" json:"schoolId"`
	Name          string        `gorm:"size:200;not null" json:"name"`
	MaxStudents   int           `gorm:"default:0" json:"maxStudents"`
	LicenseStatus LicenseStatus `gorm:"type:enum('active','trial','expired','suspended');default:'trial'" json:"licenseStatus"`
	CreatedAt     string        `gorm:"size:10" json:"createdAt,omitempty"`
	LogoURL       string        `gorm:"size:255" json:"logoUrl,omitempty"`
}

func (School) TableName() string {
	return "schools"
}

// SchoolUpdate carries a partial settings merge. Nil means "leave
// unchanged".
type SchoolUpdate struct {
	Name          *string        `json:"name"`
	MaxStudents   *int           `json:"maxStudents"`
	LicenseStatus *LicenseStatus `json:"licenseStatus"`
	LogoURL       *string        `json:"logoUrl"`
}
