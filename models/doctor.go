package models

import "github.com/golang-jwt/jwt/v5"

type Doctor struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;not null"`
	StaffID  string `json:"staff_id" gorm:"size:20;not null"`
	Username string `json:"username" gorm:"size:100"`
	Password string `json:"-" gorm:"size:255;not null"`
}

// DoctorClaims is the signed identity carried in the doctor's session cookie.
type DoctorClaims struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	StaffID  string `json:"staff_id"`
	jwt.RegisteredClaims
}
