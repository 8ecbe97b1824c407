package model

// DashboardStats is the school-wide summary. TotalClasses and
// TotalStudents are live-derived from the store; the remaining fields
// come from the read-only summary seed and are merged at the read
// boundary.
// swagger:model DashboardStats
type DashboardStats struct {
	TotalStudents        int `json:"totalStudents"`
	TotalClasses         int `json:"totalClasses"`
	AverageScore         int `json:"averageScore"`
	CompletionRate       int `json:"completionRate"`
	ActiveModules        int `json:"activeModules"`
	LicenseDaysRemaining int `json:"licenseDaysRemaining"`
}

// StudentSummary is the per-student rollup over all progress rows.
type StudentSummary struct {
	StudentID        string `json:"studentId"`
	Name             string `json:"name"`
	ClassID          string `json:"classId"`
	ClassName        string `json:"className"`
	AvgScore         int    `json:"avgScore"`
	CompletedModules int    `json:"completedModules"`
	TotalModules     int    `json:"totalModules"`
}

// ClassSummary is the per-class rollup.
type ClassSummary struct {
	ClassID        string `json:"classId"`
	UniqueStudents int    `json:"uniqueStudentCount"`
	AvgScore       int    `json:"avgScore"`
	CompletionRate int    `json:"completionRate"`
}

// ModuleProgress is the per-module rollup over the fixed catalog.
type ModuleProgress struct {
	ModuleName     string `json:"moduleName"`
	AvgScore       int    `json:"avgScore"`
	TotalStudents  int    `json:"totalStudents"`
	CompletedCount int    `json:"completedCount"`
}

// StatusBreakdown is the share of progress rows per status, in whole
// percent.
type StatusBreakdown struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	NotStarted int `json:"notStarted"`
}

// WeeklyActivity is a static read-only seed served as-is.
type WeeklyActivity struct {
	Day         string `json:"day"`
	Students    int    `json:"students"`
	Completions int    `json:"completions"`
}

// ScoreBucket is a static read-only seed served as-is.
type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// TopStudent is a static read-only seed served as-is.
type TopStudent struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Modules   int    `json:"modules"`
	ClassName string `json:"className"`
}

// MonthlyTrend is a static read-only seed served as-is.
type MonthlyTrend struct {
	Month    string `json:"month"`
	Students int    `json:"students"`
	AvgScore int    `json:"avgScore"`
}
