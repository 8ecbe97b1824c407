package model

type ProgressStatus string

const (
	NotStarted ProgressStatus = "not_started"
	InProgress ProgressStatus = "in_progress"
	Completed  ProgressStatus = "completed"
)

// StudentProgress tracks one student's work on one curriculum module.
// Composite identity is (studentId, moduleName): at most one row per
// student per module.
// swagger:model StudentProgress
type StudentProgress struct {
	StudentID   string         `gorm:"primaryKey;size:64" json:"studentId"`
	ModuleName  string         `gorm:"primaryKey;size:100" json:"moduleName"`
	StudentName string         `gorm:"size:100" json:"studentName,omitempty"`
	ClassID     string         `gorm:"size:64;index" json:"classId"`
	Score       int            `gorm:"default:0" json:"score"`
	Status      ProgressStatus `gorm:"type:enum('not_started','in_progress','completed');default:'not_started'" json:"status"`
	LastUpdated string         `gorm:"size:10" json:"lastUpdated,omitempty"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}

// ProgressUpdate carries the mutable fields of an update. Nil means
// "leave unchanged"; LastUpdated is always restamped by the store.
type ProgressUpdate struct {
	StudentName *string         `json:"studentName"`
	ClassID     *string         `json:"classId"`
	Score       *int            `json:"score"`
	Status      *ProgressStatus `json:"status"`
}
