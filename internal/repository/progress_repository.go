package repository

import (
	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) ListAll() ([]model.StudentProgress, error) {
	var rows []model.StudentProgress
	err := r.DB.Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) ListByClass(classID string) ([]model.StudentProgress, error) {
	var rows []model.StudentProgress
	err := r.DB.Where("class_id = ?", classID).Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) ListByStudent(studentID string) ([]model.StudentProgress, error) {
	var rows []model.StudentProgress
	err := r.DB.Where("student_id = ?", studentID).Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) Save(row *model.StudentProgress) error {
	return r.DB.Save(row).Error
}

func (r *ProgressRepository) Delete(studentID, moduleName string) error {
	return r.DB.
		Where("student_id = ? AND module_name = ?", studentID, moduleName).
		Delete(&model.StudentProgress{}).Error
}

// DeleteByClass removes every row referencing classID; it backs the
// cascade on class deletion.
func (r *ProgressRepository) DeleteByClass(classID string) error {
	return r.DB.Where("class_id = ?", classID).Delete(&model.StudentProgress{}).Error
}
