package repository

import (
	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"gorm.io/gorm"
)

type SchoolRepository struct {
	DB *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{DB: db}
}

func (r *SchoolRepository) FindByID(schoolID string) (*model.School, error) {
	var school model.School
	err := r.DB.Where("school_id = ?", schoolID).First(&school).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepository) Save(school *model.School) error {
	return r.DB.Save(school).Error
}
