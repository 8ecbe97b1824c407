package repository

import (
	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) ListAll() ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Order("class_name").Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) ListByTeacher(teacherID string) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Where("teacher_id = ?", teacherID).Order("class_name").Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) ListBySchool(schoolID string) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Where("school_id = ?", schoolID).Order("class_name").Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) FindByID(classID string) (*model.Class, error) {
	var cls model.Class
	err := r.DB.Where("class_id = ?", classID).First(&cls).Error
	if err != nil {
		return nil, err
	}
	return &cls, nil
}

func (r *ClassRepository) Save(cls *model.Class) error {
	return r.DB.Save(cls).Error
}

func (r *ClassRepository) Delete(classID string) error {
	return r.DB.Where("class_id = ?", classID).Delete(&model.Class{}).Error
}
