package models

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"size:100;not null"`
	Gender              string    `json:"gender" gorm:"size:100;not null"`
	Age                 int       `json:"age" gorm:"not null"`
	PatRef              string    `json:"pat_ref" gorm:"size:7;uniqueIndex;not null"`
	BloodGroup          string    `json:"blood_group" gorm:"size:20"`
	PatientPhone        string    `json:"patient_phone" gorm:"size:11;uniqueIndex;not null"`
	NextOfKin           string    `json:"next_of_kin" gorm:"size:100;not null"`
	PresentingComplaint string    `json:"presenting_complaint" gorm:"type:text;not null"`
	AdmissionDate       time.Time `json:"admission_date" gorm:"not null"`
	Visits              []Visit   `json:"visits,omitempty" gorm:"foreignKey:PatientID"`
}

// NewPatRef returns a candidate reference code of the form PT-XXXX.
func NewPatRef() string {
	return fmt.Sprintf("PT-%04d", 1000+rand.Intn(9000))
}

// AssignPatRef fills in a reference code not already taken in the patients
// table. The retry loop only narrows the race window; the unique index on
// pat_ref is the real guarantee.
func AssignPatRef(db *gorm.DB, patient *Patient) error {
	const maxAttempts = 25
	for i := 0; i < maxAttempts; i++ {
		ref := NewPatRef()
		var count int64
		if err := db.Model(&Patient{}).Where("pat_ref = ?", ref).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			patient.PatRef = ref
			return nil
		}
	}
	return fmt.Errorf("no free patient reference after %d attempts", maxAttempts)
}
