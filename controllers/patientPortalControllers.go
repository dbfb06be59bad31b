package controllers

import (
	"net/http"

	"github.com/charmin16/hosp-mgt/authentication"
	"github.com/charmin16/hosp-mgt/configuration"
	"github.com/charmin16/hosp-mgt/models"
	"github.com/gin-gonic/gin"
)

// RegisterPatientPage renders the self-service registration form.
func RegisterPatientPage(c *gin.Context) {
	render(c, http.StatusOK, "register_pat.html", nil)
}

// RegisterPatient creates a self-service credential, but only for a phone
// number the clinic has already admitted.
func RegisterPatient(c *gin.Context) {
	name := c.PostForm("name")
	phone := c.PostForm("phone")
	password := c.PostForm("password")

	var patient models.Patient
	if err := configuration.DB.Where("patient_phone = ?", phone).First(&patient).Error; err != nil {
		authentication.Flash(c, "error", "Credentials not in our database. Are you sure you have visited our facility before")
		c.Redirect(http.StatusFound, "/register_patient")
		return
	}

	hashed, err := authentication.HashPassword(password)
	if err != nil {
		authentication.Flash(c, "error", "Could not register. Please try again")
		c.Redirect(http.StatusFound, "/register_patient")
		return
	}

	login := models.PatientLogin{
		Name:     name,
		Phone:    phone,
		Password: hashed,
	}
	if err := configuration.DB.Create(&login).Error; err != nil {
		if isUniqueViolation(err) {
			authentication.Flash(c, "error", "This phone number already has a patient account. Sign in below")
			c.Redirect(http.StatusFound, "/")
			return
		}
		authentication.Flash(c, "error", "Could not register. Please try again")
		c.Redirect(http.StatusFound, "/register_patient")
		return
	}

	authentication.Flash(c, "success", "Patient Successfully Registered. You can now sign in as patient to view your own records")
	c.Redirect(http.StatusFound, "/")
}

// PatientLoginPage sends stray GETs back to the doctor login page.
func PatientLoginPage(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// PatientLogin re-verifies the self-service credentials and shows the
// patient their own record and visits. There is no persistent patient
// session; every view goes through this check.
func PatientLogin(c *gin.Context) {
	phone := c.PostForm("pat_tel")
	password := c.PostForm("pat_password")

	var existing models.PatientLogin
	err := configuration.DB.Where("phone = ?", phone).First(&existing).Error
	if err != nil || !authentication.CheckPassword(existing.Password, password) {
		authentication.Flash(c, "error", "Credentials Not Found")
		render(c, http.StatusOK, "register_pat.html", nil)
		return
	}

	var patient models.Patient
	if err := configuration.DB.Where("patient_phone = ?", existing.Phone).First(&patient).Error; err != nil {
		authentication.Flash(c, "error", "Credentials Not Found")
		render(c, http.StatusOK, "register_pat.html", nil)
		return
	}

	var visits []models.Visit
	configuration.DB.Where("patient_id = ?", patient.ID).Find(&visits)

	authentication.Flash(c, "success", "Login Successful")
	render(c, http.StatusOK, "patient_page.html", gin.H{"patient": patient, "visit": visits})
}
