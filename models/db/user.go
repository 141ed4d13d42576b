package dbmodels

import (
	"fmt"
	"talentflow-backend/models"
)

type User struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Password  string `gorm:"type:varchar(255)"`
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	Role      models.UserRole `gorm:"type:varchar(100)"`
}

func (u User) GetFullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
