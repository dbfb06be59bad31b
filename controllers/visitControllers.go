package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmin16/hosp-mgt/authentication"
	"github.com/charmin16/hosp-mgt/configuration"
	"github.com/charmin16/hosp-mgt/models"
	"github.com/gin-gonic/gin"
)

// loadPatientVisit resolves the patient at the phone in the path and the
// visit belonging to it, flashing not-found and redirecting home when either
// half of the pair is wrong.
func loadPatientVisit(c *gin.Context) (models.Patient, models.Visit, bool) {
	phone := c.Param("phone")

	var patient models.Patient
	if err := configuration.DB.Where("patient_phone = ?", phone).First(&patient).Error; err != nil {
		authentication.Flash(c, "error", "Patient Not Found")
		c.Redirect(http.StatusFound, "/home/")
		return patient, models.Visit{}, false
	}

	visitID, err := strconv.Atoi(c.Param("visit_id"))
	if err != nil {
		authentication.Flash(c, "error", "Medical Record Not Found")
		c.Redirect(http.StatusFound, "/home/")
		return patient, models.Visit{}, false
	}

	var visit models.Visit
	if err := configuration.DB.Where("id = ? AND patient_id = ?", visitID, patient.ID).First(&visit).Error; err != nil {
		authentication.Flash(c, "error", "Medical Record Not Found")
		c.Redirect(http.StatusFound, "/home/")
		return patient, visit, false
	}
	return patient, visit, true
}

// LogVisitPage shows a patient's visit history oldest first, with the entry
// form for the next encounter.
func LogVisitPage(c *gin.Context) {
	phone := c.Param("phone")

	var patient models.Patient
	if err := configuration.DB.Where("patient_phone = ?", phone).First(&patient).Error; err != nil {
		authentication.Flash(c, "error", "Phone Number not Found. Please check the number and try again")
		c.Redirect(http.StatusFound, "/home/")
		return
	}

	var visits []models.Visit
	configuration.DB.Where("patient_id = ?", patient.ID).Order("date").Find(&visits)

	render(c, http.StatusOK, "add_visit.html", gin.H{
		"patient": patient,
		"visit":   visits,
		"now":     time.Now().Format("2006-01-02 15:04"),
	})
}

// LogVisit records a new encounter stamped with the acting doctor's name. An
// empty date defaults to today; confirmation shows only the visit just
// created.
func LogVisit(c *gin.Context) {
	doctor := authentication.MustDoctor(c)
	phone := c.Param("phone")

	var patient models.Patient
	if err := configuration.DB.Where("patient_phone = ?", phone).First(&patient).Error; err != nil {
		authentication.Flash(c, "error", "Phone Number not Found. Please check the number and try again")
		c.Redirect(http.StatusFound, "/home/")
		return
	}

	visitDate, err := parseDate(c.PostForm("date"))
	if err != nil {
		authentication.Flash(c, "error", "Visit date must be in YYYY-MM-DD format")
		c.Redirect(http.StatusFound, "/add_visit/"+phone)
		return
	}

	var nextAppointment *time.Time
	if next := c.PostForm("next_date"); next != "" {
		parsed, err := time.Parse(dateLayout, next)
		if err != nil {
			authentication.Flash(c, "error", "Next appointment must be in YYYY-MM-DD format")
			c.Redirect(http.StatusFound, "/add_visit/"+phone)
			return
		}
		nextAppointment = &parsed
	}

	visit := models.Visit{
		Date:               visitDate,
		Diagnosis:          c.PostForm("diagnosis"),
		Tests:              c.PostForm("test"),
		Medication:         c.PostForm("medication"),
		NextAppointment:    nextAppointment,
		AttendingPhysician: "Dr " + doctor.Name,
		PatientID:          patient.ID,
	}
	if err := configuration.DB.Create(&visit).Error; err != nil {
		authentication.Flash(c, "error", "Could not save the visit. Please try again")
		c.Redirect(http.StatusFound, "/add_visit/"+phone)
		return
	}

	render(c, http.StatusOK, "add_visit_outcome.html", gin.H{
		"patient": patient,
		"visit":   visit,
		"now":     time.Now().Format("2006-01-02 15:04"),
	})
}

// UpdateVisitPage renders the edit form for one visit.
func UpdateVisitPage(c *gin.Context) {
	patient, visit, ok := loadPatientVisit(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "edit_visit.html", gin.H{"single": patient, "vis": visit})
}

// UpdateVisit mutates diagnosis, tests and medication only.
func UpdateVisit(c *gin.Context) {
	patient, visit, ok := loadPatientVisit(c)
	if !ok {
		return
	}

	visit.Diagnosis = c.PostForm("diagnosis")
	visit.Tests = c.PostForm("test")
	visit.Medication = c.PostForm("medication")

	if err := configuration.DB.Save(&visit).Error; err != nil {
		authentication.Flash(c, "error", "Could not update the record. Please try again")
		c.Redirect(http.StatusFound, "/add_visit/"+patient.PatientPhone)
		return
	}

	authentication.Flash(c, "success", "Medical Record Successfully Updated")
	c.Redirect(http.StatusFound, "/add_visit/"+patient.PatientPhone)
}

// DeleteVisit removes one visit row.
func DeleteVisit(c *gin.Context) {
	patient, visit, ok := loadPatientVisit(c)
	if !ok {
		return
	}

	if err := configuration.DB.Delete(&visit).Error; err != nil {
		authentication.Flash(c, "error", "Could not delete the record. Please try again")
		c.Redirect(http.StatusFound, "/add_visit/"+patient.PatientPhone)
		return
	}

	authentication.Flash(c, "success", "Medical Record Deleted")
	c.Redirect(http.StatusFound, "/add_visit/"+patient.PatientPhone)
}
