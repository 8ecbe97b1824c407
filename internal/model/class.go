package model

// Class is owned by a teacher within a school. Students enroll with
// the human-shareable join code, unique within the school.
// swagger:model Class
type Class struct {
	ClassID      string `gorm:"primaryKey;size:64" json:"classId"`
	ClassName    string `gorm:"size:200;not null" json:"className"`
	TeacherID    string `gorm:"size:64;index" json:"teacherId"`
	SchoolID     string `gorm:"size:64;index" json:"schoolId"`
	JoinCode     string `gorm:"size:6;index" json:"joinCode"`
	StudentCount int    `gorm:"default:0" json:"studentCount"`
	CreatedAt    string `gorm:"size:10" json:"createdAt,omitempty"`
	Description  string `gorm:"size:500" json:"description,omitempty"`
}

func (Class) TableName() string {
	return "classes"
}

// ClassInput carries the caller-supplied fields for class creation.
// ClassID, CreatedAt and (when absent) JoinCode are filled in by the
// store.
type ClassInput struct {
	ClassName    string `json:"className" binding:"required"`
	TeacherID    string `json:"teacherId" binding:"required"`
	SchoolID     string `json:"schoolId" binding:"required"`
	JoinCode     string `json:"joinCode"`
	StudentCount int    `json:"studentCount"`
	Description  string `json:"description"`
}

// ClassUpdate carries a partial-field merge. Nil means "leave
// unchanged".
type ClassUpdate struct {
	ClassName    *string `json:"className"`
	TeacherID    *string `json:"teacherId"`
	JoinCode     *string `json:"joinCode"`
	StudentCount *int    `json:"studentCount"`
	Description  *string `json:"description"`
}
