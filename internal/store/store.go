// Package store owns the canonical in-memory collections behind the
// dashboard: classes, student progress and the user/school singletons.
// It is constructed once per server lifetime and injected into the
// services; mutations are guarded by a RWMutex so the composite-key
// and cascade-delete invariants hold under concurrent requests.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/idgen"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/notify"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/stats"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
)

const dateLayout = "2006-01-02"

type Store struct {
	mu          sync.RWMutex
	classes     []model.Class
	progress    []model.StudentProgress
	user        model.User
	school      model.School
	seededStats model.DashboardStats

	gen      *idgen.Generator
	notifier *notify.Center
	now      func() time.Time
}

// Seed is the initial state the store boots from, either fixtures or
// rows loaded from the persistence collaborator.
type Seed struct {
	Classes  []model.Class
	Progress []model.StudentProgress
	User     model.User
	School   model.School
	Stats    model.DashboardStats
}

func New(seed Seed, notifier *notify.Center) *Store {
	s := &Store{
		classes:     append([]model.Class(nil), seed.Classes...),
		progress:    append([]model.StudentProgress(nil), seed.Progress...),
		user:        seed.User,
		school:      seed.School,
		seededStats: seed.Stats,
		gen:         idgen.New(len(seed.Classes)),
		notifier:    notifier,
		now:         time.Now,
	}
	return s
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

// ─── Read models ─────────────────────────────────────────

func (s *Store) Classes() []model.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Class(nil), s.classes...)
}

func (s *Store) ClassByID(classID string) (model.Class, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.classes {
		if c.ClassID == classID {
			return c, true
		}
	}
	return model.Class{}, false
}

// Progress returns the progress rows, optionally filtered by class
// and/or student. Empty filter values match everything.
func (s *Store) Progress(classID, studentID string) []model.StudentProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.StudentProgress, 0, len(s.progress))
	for _, p := range s.progress {
		if classID != "" && p.ClassID != classID {
			continue
		}
		if studentID != "" && p.StudentID != studentID {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Store) User() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) School() model.School {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.school
}

// ─── Derived stats (recomputed on read) ──────────────────

func (s *Store) Summary() model.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.Summary(s.seededStats, s.classes, s.progress)
}

func (s *Store) StudentSummaries() []model.StudentSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.StudentSummaries(s.progress, s.classes)
}

func (s *Store) ClassSummary(classID string) model.ClassSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.ClassSummary(s.progress, classID)
}

func (s *Store) ModuleSummaries() []model.ModuleProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.ModuleSummaries(s.progress)
}

func (s *Store) StatusBreakdown() model.StatusBreakdown {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.Breakdown(s.progress)
}

// ─── Class mutations ─────────────────────────────────────

// AddClass constructs a new class with a generated id, a join code
// (generated unless supplied), StudentCount defaulted to 0 and
// CreatedAt stamped to the current date. A caller-supplied join code
// colliding with an existing one in the same school is rejected;
// generated codes are re-drawn until unique.
func (s *Store) AddClass(in model.ClassInput) (model.Class, error) {
	if strings.TrimSpace(in.ClassName) == "" {
		s.notifier.Errorf("Class name must not be empty")
		return model.Class{}, util.ErrEmptyClassName
	}

	s.mu.Lock()
	code := in.JoinCode
	if code != "" {
		if s.joinCodeTakenLocked(code, in.SchoolID, "") {
			s.mu.Unlock()
			s.notifier.Errorf("Join code " + code + " is already in use")
			return model.Class{}, util.ErrDuplicateJoinCode
		}
	} else {
		for code = idgen.JoinCode(); s.joinCodeTakenLocked(code, in.SchoolID, ""); code = idgen.JoinCode() {
		}
	}

	cls := model.Class{
		ClassID:      s.gen.NextID("class"),
		ClassName:    in.ClassName,
		TeacherID:    in.TeacherID,
		SchoolID:     in.SchoolID,
		JoinCode:     code,
		StudentCount: in.StudentCount,
		CreatedAt:    s.today(),
		Description:  in.Description,
	}
	s.classes = append(s.classes, cls)
	s.mu.Unlock()

	s.notifier.Successf(`Class "` + cls.ClassName + `" created successfully`)
	return cls, nil
}

// UpdateClass merges the non-nil fields of data onto the matching
// class.
func (s *Store) UpdateClass(classID string, data model.ClassUpdate) (model.Class, error) {
	s.mu.Lock()
	i := s.classIndexLocked(classID)
	if i < 0 {
		s.mu.Unlock()
		s.notifier.Errorf("Class not found")
		return model.Class{}, util.ErrClassNotFound
	}

	c := &s.classes[i]
	if data.JoinCode != nil && *data.JoinCode != c.JoinCode {
		if s.joinCodeTakenLocked(*data.JoinCode, c.SchoolID, classID) {
			s.mu.Unlock()
			s.notifier.Errorf("Join code " + *data.JoinCode + " is already in use")
			return model.Class{}, util.ErrDuplicateJoinCode
		}
		c.JoinCode = *data.JoinCode
	}
	if data.ClassName != nil {
		c.ClassName = *data.ClassName
	}
	if data.TeacherID != nil {
		c.TeacherID = *data.TeacherID
	}
	if data.StudentCount != nil {
		c.StudentCount = *data.StudentCount
	}
	if data.Description != nil {
		c.Description = *data.Description
	}
	updated := *c
	s.mu.Unlock()

	s.notifier.Successf("Class updated successfully")
	return updated, nil
}

// DeleteClass removes the class and cascades to every progress row
// referencing it, so no row ever points at a missing class. It returns
// the number of cascaded rows.
func (s *Store) DeleteClass(classID string) (int, error) {
	s.mu.Lock()
	i := s.classIndexLocked(classID)
	if i < 0 {
		s.mu.Unlock()
		s.notifier.Errorf("Class not found")
		return 0, util.ErrClassNotFound
	}
	s.classes = append(s.classes[:i], s.classes[i+1:]...)

	kept := s.progress[:0]
	cascaded := 0
	for _, p := range s.progress {
		if p.ClassID == classID {
			cascaded++
			continue
		}
		kept = append(kept, p)
	}
	s.progress = kept
	s.mu.Unlock()

	s.notifier.Successf("Class deleted successfully")
	return cascaded, nil
}

// ─── Progress mutations ──────────────────────────────────

// AddProgress appends a row after validating the module against the
// catalog, the score range and the (studentId, moduleName) composite
// uniqueness.
func (s *Store) AddProgress(row model.StudentProgress) error {
	if !model.KnownModule(row.ModuleName) {
		s.notifier.Errorf("Unknown module: " + row.ModuleName)
		return util.ErrUnknownModule
	}
	if row.Score < 0 || row.Score > 100 {
		s.notifier.Errorf("Score must be between 0 and 100")
		return util.ErrInvalidScore
	}
	if row.Status == "" {
		row.Status = model.NotStarted
	}
	if row.LastUpdated == "" {
		row.LastUpdated = s.today()
	}

	s.mu.Lock()
	if s.progressIndexLocked(row.StudentID, row.ModuleName) >= 0 {
		s.mu.Unlock()
		s.notifier.Errorf("Progress already recorded for this student and module")
		return util.ErrDuplicateProgress
	}
	s.progress = append(s.progress, row)
	s.mu.Unlock()

	s.notifier.Successf("Progress added successfully")
	return nil
}

// UpdateProgress merges the non-nil fields onto the row matching the
// composite key and unconditionally restamps LastUpdated, even when no
// other field changes. Scores are clamped into [0,100].
func (s *Store) UpdateProgress(studentID, moduleName string, data model.ProgressUpdate) (model.StudentProgress, error) {
	s.mu.Lock()
	i := s.progressIndexLocked(studentID, moduleName)
	if i < 0 {
		s.mu.Unlock()
		s.notifier.Errorf("Progress record not found")
		return model.StudentProgress{}, util.ErrProgressNotFound
	}

	p := &s.progress[i]
	if data.StudentName != nil {
		p.StudentName = *data.StudentName
	}
	if data.ClassID != nil {
		p.ClassID = *data.ClassID
	}
	if data.Score != nil {
		p.Score = clampScore(*data.Score)
	}
	if data.Status != nil {
		p.Status = *data.Status
	}
	p.LastUpdated = s.today()
	updated := *p
	s.mu.Unlock()

	s.notifier.Successf("Student progress updated")
	return updated, nil
}

// DeleteProgress removes the row matching the composite key.
func (s *Store) DeleteProgress(studentID, moduleName string) error {
	s.mu.Lock()
	i := s.progressIndexLocked(studentID, moduleName)
	if i < 0 {
		s.mu.Unlock()
		s.notifier.Errorf("Progress record not found")
		return util.ErrProgressNotFound
	}
	s.progress = append(s.progress[:i], s.progress[i+1:]...)
	s.mu.Unlock()

	s.notifier.Successf("Progress record deleted")
	return nil
}

// ─── Singleton mutations ─────────────────────────────────

func (s *Store) UpdateUser(data model.UserUpdate) model.User {
	s.mu.Lock()
	if data.Name != nil {
		s.user.Name = *data.Name
	}
	if data.Email != nil {
		s.user.Email = *data.Email
	}
	if data.AvatarURL != nil {
		s.user.AvatarURL = *data.AvatarURL
	}
	updated := s.user
	s.mu.Unlock()

	s.notifier.Successf("Profile updated successfully")
	return updated
}

func (s *Store) UpdateSchool(data model.SchoolUpdate) model.School {
	s.mu.Lock()
	if data.Name != nil {
		s.school.Name = *data.Name
	}
	if data.MaxStudents != nil {
		s.school.MaxStudents = *data.MaxStudents
	}
	if data.LicenseStatus != nil {
		s.school.LicenseStatus = *data.LicenseStatus
	}
	if data.LogoURL != nil {
		s.school.LogoURL = *data.LogoURL
	}
	updated := s.school
	s.mu.Unlock()

	s.notifier.Successf("School information updated")
	return updated
}

// ─── helpers ─────────────────────────────────────────────

func (s *Store) classIndexLocked(classID string) int {
	for i, c := range s.classes {
		if c.ClassID == classID {
			return i
		}
	}
	return -1
}

func (s *Store) progressIndexLocked(studentID, moduleName string) int {
	for i, p := range s.progress {
		if p.StudentID == studentID && p.ModuleName == moduleName {
			return i
		}
	}
	return -1
}

func (s *Store) joinCodeTakenLocked(code, schoolID, excludeClassID string) bool {
	for _, c := range s.classes {
		if c.SchoolID == schoolID && c.JoinCode == code && c.ClassID != excludeClassID {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
