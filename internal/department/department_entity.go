package department

import "time"

type Department struct {
	DepartmentID int16  `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex:uq_department_name"`
	GroupName    string
	ModifiedDate time.Time
}

func (Department) TableName() string { return "departments" }
