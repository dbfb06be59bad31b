package models

import "time"

type Visit struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	Date               time.Time  `json:"date" gorm:"not null"`
	Diagnosis          string     `json:"diagnosis" gorm:"type:text;not null"`
	Tests              string     `json:"tests" gorm:"type:text"`
	Medication         string     `json:"medication" gorm:"type:text"`
	NextAppointment    *time.Time `json:"next_appointment"`
	AttendingPhysician string     `json:"attending_physician" gorm:"size:100;not null"`
	PatientID          uint       `json:"patient_id" gorm:"index"`
}
