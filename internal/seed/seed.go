// Package seed provides the fixture data the store boots from when no
// database is configured, plus the static read-only summary seeds the
// dashboard serves as-is. Fixtures are deterministic so aggregate
// numbers are stable across restarts.
package seed

import (
	"fmt"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
)

func User() model.User {
	return model.User{
		UID:      "teacher-001",
		Name:     "Prof. Abraham Doñastes",
		Email:    "abraham.donastes@roboticschool.edu",
		Role:     model.Admin,
		SchoolID: "school-001",
	}
}

func School() model.School {
	return model.School{
		SchoolID:      "school-001",
		Name:          "Instituto Tecnológico Monterrey",
		MaxStudents:   200,
		LicenseStatus: model.LicenseActive,
		CreatedAt:     "2025-08-15",
	}
}

// Stats is the static summary seed. TotalStudents and TotalClasses are
// placeholders that the store overrides with live-derived values at
// the read boundary.
func Stats() model.DashboardStats {
	return model.DashboardStats{
		TotalStudents:        147,
		TotalClasses:         8,
		AverageScore:         78,
		CompletionRate:       64,
		ActiveModules:        12,
		LicenseDaysRemaining: 245,
	}
}

func Classes() []model.Class {
	return []model.Class{
		{ClassID: "class-001", ClassName: "Robótica Básica - 3°A", TeacherID: "teacher-001", SchoolID: "school-001", JoinCode: "RBT3A7", StudentCount: 24, CreatedAt: "2025-09-01", Description: "Introducción a la robótica y programación de bloques"},
		{ClassID: "class-002", ClassName: "Programación Arduino - 4°B", TeacherID: "teacher-001", SchoolID: "school-001", JoinCode: "ARD4B2", StudentCount: 22, CreatedAt: "2025-09-01", Description: "Programación de microcontroladores Arduino"},
		{ClassID: "class-003", ClassName: "Electrónica Creativa - 5°A", TeacherID: "teacher-001", SchoolID: "school-001", JoinCode: "ELC5A9", StudentCount: 19, CreatedAt: "2025-09-01", Description: "Circuitos y sensores para proyectos creativos"},
		{ClassID: "class-004", ClassName: "Robótica Avanzada - 6°A", TeacherID: "teacher-001", SchoolID: "school-001", JoinCode: "RAV6A3", StudentCount: 18, CreatedAt: "2025-09-01", Description: "Diseño y construcción de robots autónomos"},
		{ClassID: "class-005", ClassName: "IoT y Sensores - 5°B", TeacherID: "teacher-002", SchoolID: "school-001", JoinCode: "IOT5B1", StudentCount: 21, CreatedAt: "2025-09-15", Description: "Internet de las cosas y redes de sensores"},
		{ClassID: "class-006", ClassName: "Pensamiento Computacional - 2°A", TeacherID: "teacher-002", SchoolID: "school-001", JoinCode: "PCT2A5", StudentCount: 26, CreatedAt: "2025-09-15", Description: "Fundamentos de lógica y programación visual"},
		{ClassID: "class-007", ClassName: "Diseño 3D - 4°A", TeacherID: "teacher-001", SchoolID: "school-001", JoinCode: "D3D4A8", StudentCount: 17, CreatedAt: "2025-10-01", Description: "Modelado e impresión 3D para robótica"},
		{ClassID: "class-008", ClassName: "Mecatrónica Jr - 3°B", TeacherID: "teacher-001", SchoolID: "school-001", JoinCode: "MCT3B4", StudentCount: 20, CreatedAt: "2025-10-01", Description: "Introducción a sistemas mecatrónicos"},
	}
}

var studentNames = []string{
	"Carlos Mendoza", "Ana Sofía López", "Diego Ramírez", "Valentina Torres",
	"Sebastián Flores", "Isabella García", "Mateo Hernández", "Camila Morales",
	"Santiago Cruz", "Luciana Vargas", "Emilio Castillo", "Regina Ortiz",
	"Daniel Peña", "Mariana Ríos", "Andrés Navarro", "Paula Guerrero",
	"Nicolás Campos", "Renata Medina", "Alejandro Vega", "Gabriela Reyes",
	"Fernando Silva", "Ximena Aguilar", "Tomás Herrera", "Victoria Jiménez",
}

// Progress derives one fixture row per (student, module) pair. Each
// student covers a 3–8 module prefix of the catalog; scores land in
// [60,100] and the earliest modules are completed first.
func Progress() []model.StudentProgress {
	classes := Classes()
	var rows []model.StudentProgress

	for i, name := range studentNames {
		studentID := fmt.Sprintf("student-%03d", i+1)
		classID := classes[i%4].ClassID
		moduleCount := 3 + (i*5)%6
		completedCount := 1 + i%3

		for j := 0; j < moduleCount; j++ {
			status := model.NotStarted
			switch {
			case j < completedCount:
				status = model.Completed
			case j == completedCount:
				status = model.InProgress
			}
			rows = append(rows, model.StudentProgress{
				StudentID:   studentID,
				StudentName: name,
				ClassID:     classID,
				ModuleName:  model.ModuleCatalog[j],
				Score:       60 + (i*7+j*13)%41,
				Status:      status,
				LastUpdated: fmt.Sprintf("2026-02-%02d", (i+j)%18+1),
			})
		}
	}
	return rows
}

func WeeklyActivity() []model.WeeklyActivity {
	return []model.WeeklyActivity{
		{Day: "Lun", Students: 89, Completions: 12},
		{Day: "Mar", Students: 102, Completions: 18},
		{Day: "Mié", Students: 95, Completions: 15},
		{Day: "Jue", Students: 110, Completions: 22},
		{Day: "Vie", Students: 78, Completions: 9},
		{Day: "Sáb", Students: 34, Completions: 4},
		{Day: "Dom", Students: 12, Completions: 1},
	}
}

func ScoreDistribution() []model.ScoreBucket {
	return []model.ScoreBucket{
		{Range: "0-20", Count: 2},
		{Range: "21-40", Count: 5},
		{Range: "41-60", Count: 18},
		{Range: "61-80", Count: 67},
		{Range: "81-100", Count: 55},
	}
}

func TopStudents() []model.TopStudent {
	return []model.TopStudent{
		{Name: "Valentina Torres", Score: 96, Modules: 8, ClassName: "Robótica Básica - 3°A"},
		{Name: "Mateo Hernández", Score: 94, Modules: 7, ClassName: "Programación Arduino - 4°B"},
		{Name: "Ana Sofía López", Score: 92, Modules: 9, ClassName: "Robótica Básica - 3°A"},
		{Name: "Santiago Cruz", Score: 91, Modules: 7, ClassName: "Electrónica Creativa - 5°A"},
		{Name: "Isabella García", Score: 89, Modules: 6, ClassName: "Robótica Avanzada - 6°A"},
	}
}

func MonthlyTrend() []model.MonthlyTrend {
	return []model.MonthlyTrend{
		{Month: "Sep", Students: 80, AvgScore: 65},
		{Month: "Oct", Students: 102, AvgScore: 68},
		{Month: "Nov", Students: 118, AvgScore: 72},
		{Month: "Dic", Students: 125, AvgScore: 71},
		{Month: "Ene", Students: 138, AvgScore: 75},
		{Month: "Feb", Students: 147, AvgScore: 78},
	}
}
