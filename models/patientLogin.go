package models

// PatientLogin is the self-service credential record. It is linked to a
// Patient only by phone number, not by a stored foreign key.
type PatientLogin struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;not null"`
	Phone    string `json:"phone" gorm:"size:11;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:255;not null"`
}

func (PatientLogin) TableName() string {
	return "patient_login"
}
