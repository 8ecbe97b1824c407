// Package stats derives dashboard rollups from the raw progress rows.
// Every function is pure: it reads the slices it is given and never
// mutates them. All averages and percentages are whole numbers,
// rounded half-up; an empty contributing set yields 0.
package stats

import (
	"math"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
)

func roundMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// StudentSummaries groups progress rows by student, preserving
// first-seen order. The display name falls back to the student id and
// the class name to "—" when unresolvable.
func StudentSummaries(rows []model.StudentProgress, classes []model.Class) []model.StudentSummary {
	classNames := make(map[string]string, len(classes))
	for _, c := range classes {
		classNames[c.ClassID] = c.ClassName
	}

	index := make(map[string]int, len(rows))
	sums := make([]int, 0, len(rows))
	out := make([]model.StudentSummary, 0, len(rows))

	for _, p := range rows {
		i, seen := index[p.StudentID]
		if !seen {
			name := p.StudentName
			if name == "" {
				name = p.StudentID
			}
			className, ok := classNames[p.ClassID]
			if !ok {
				className = "—"
			}
			i = len(out)
			index[p.StudentID] = i
			out = append(out, model.StudentSummary{
				StudentID: p.StudentID,
				Name:      name,
				ClassID:   p.ClassID,
				ClassName: className,
			})
			sums = append(sums, 0)
		}
		out[i].TotalModules++
		if p.Status == model.Completed {
			out[i].CompletedModules++
		}
		sums[i] += p.Score
	}

	for i := range out {
		out[i].AvgScore = roundMean(sums[i], out[i].TotalModules)
	}
	return out
}

// ClassSummary rolls up the rows belonging to one class.
func ClassSummary(rows []model.StudentProgress, classID string) model.ClassSummary {
	summary := model.ClassSummary{ClassID: classID}
	students := make(map[string]struct{})
	sum, completed, total := 0, 0, 0

	for _, p := range rows {
		if p.ClassID != classID {
			continue
		}
		students[p.StudentID] = struct{}{}
		sum += p.Score
		total++
		if p.Status == model.Completed {
			completed++
		}
	}

	summary.UniqueStudents = len(students)
	summary.AvgScore = roundMean(sum, total)
	summary.CompletionRate = percent(completed, total)
	return summary
}

// ModuleSummaries rolls up every module of the fixed catalog, in
// catalog order. Modules with no rows yield all-zero entries.
func ModuleSummaries(rows []model.StudentProgress) []model.ModuleProgress {
	out := make([]model.ModuleProgress, 0, len(model.ModuleCatalog))
	for _, name := range model.ModuleCatalog {
		mp := model.ModuleProgress{ModuleName: name}
		sum := 0
		for _, p := range rows {
			if p.ModuleName != name {
				continue
			}
			mp.TotalStudents++
			sum += p.Score
			if p.Status == model.Completed {
				mp.CompletedCount++
			}
		}
		mp.AvgScore = roundMean(sum, mp.TotalStudents)
		out = append(out, mp)
	}
	return out
}

// Summary merges the read-only seeded stats with the live-derived
// fields. Seeded fields come first; only TotalClasses and
// TotalStudents are overridden from the collections.
func Summary(seeded model.DashboardStats, classes []model.Class, rows []model.StudentProgress) model.DashboardStats {
	students := make(map[string]struct{}, len(rows))
	for _, p := range rows {
		students[p.StudentID] = struct{}{}
	}

	out := seeded
	out.TotalClasses = len(classes)
	out.TotalStudents = len(students)
	return out
}

// Breakdown returns the share of rows per status in whole percent.
func Breakdown(rows []model.StudentProgress) model.StatusBreakdown {
	var completed, inProgress, notStarted int
	for _, p := range rows {
		switch p.Status {
		case model.Completed:
			completed++
		case model.InProgress:
			inProgress++
		default:
			notStarted++
		}
	}
	total := len(rows)
	return model.StatusBreakdown{
		Completed:  percent(completed, total),
		InProgress: percent(inProgress, total),
		NotStarted: percent(notStarted, total),
	}
}

// AtRiskCount counts students averaging below 60.
func AtRiskCount(summaries []model.StudentSummary) int {
	n := 0
	for _, s := range summaries {
		if s.AvgScore < 60 {
			n++
		}
	}
	return n
}

// TopCount counts students averaging 90 or above.
func TopCount(summaries []model.StudentSummary) int {
	n := 0
	for _, s := range summaries {
		if s.AvgScore >= 90 {
			n++
		}
	}
	return n
}
