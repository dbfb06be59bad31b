package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmin16/hosp-mgt/authentication"
	"github.com/charmin16/hosp-mgt/configuration"
	"github.com/charmin16/hosp-mgt/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type intakeForm struct {
	Name    string `form:"name" validate:"required"`
	Gender  string `form:"gender" validate:"required"`
	DOB     string `form:"dob" validate:"required"`
	Patient string `form:"patient" validate:"required,len=11"`
	Nok     string `form:"nok" validate:"required"`
	Biw     string `form:"biw" validate:"required"`
	Bid     string `form:"bid"`
	Blood   string `form:"blood"`
}

// formData preserves the submitted values so a rejected form comes back
// pre-filled.
func (f intakeForm) formData() map[string]string {
	return map[string]string{
		"name":    f.Name,
		"gender":  f.Gender,
		"dob":     f.DOB,
		"patient": f.Patient,
		"nok":     f.Nok,
		"biw":     f.Biw,
		"bid":     f.Bid,
		"blood":   f.Blood,
	}
}

// AddPatientPage renders a blank intake form.
func AddPatientPage(c *gin.Context) {
	render(c, http.StatusOK, "add_pat.html", gin.H{"form_data": map[string]string{}})
}

// AddPatient registers a new patient. The phone number must be exactly 11
// characters and unique; age is a snapshot of current year minus birth year.
func AddPatient(c *gin.Context) {
	var form intakeForm
	if err := c.ShouldBind(&form); err != nil {
		authentication.Flash(c, "error", "Please fill all the mandatory fields")
		render(c, http.StatusOK, "add_pat.html", gin.H{"form_data": form.formData()})
		return
	}

	if err := validate.Struct(form); err != nil {
		message := "Please fill all the mandatory fields"
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				if fe.Field() == "Patient" && fe.Tag() == "len" {
					message = "Phone Number must be 11 digits long"
					break
				}
			}
		}
		authentication.Flash(c, "error", message)
		render(c, http.StatusOK, "add_pat.html", gin.H{"form_data": form.formData()})
		return
	}

	dob, err := time.Parse(dateLayout, form.DOB)
	if err != nil {
		authentication.Flash(c, "error", "Date of birth must be in YYYY-MM-DD format")
		render(c, http.StatusOK, "add_pat.html", gin.H{"form_data": form.formData()})
		return
	}
	age := time.Now().Year() - dob.Year()

	admission, err := parseDate(form.Bid)
	if err != nil {
		authentication.Flash(c, "error", "Admission date must be in YYYY-MM-DD format")
		render(c, http.StatusOK, "add_pat.html", gin.H{"form_data": form.formData()})
		return
	}

	patient := models.Patient{
		Name:                form.Name,
		Gender:              form.Gender,
		Age:                 age,
		NextOfKin:           form.Nok,
		PatientPhone:        form.Patient,
		BloodGroup:          form.Blood,
		PresentingComplaint: form.Biw,
		AdmissionDate:       admission,
	}
	if err := models.AssignPatRef(configuration.DB, &patient); err != nil {
		authentication.Flash(c, "error", "Could not allocate a patient reference. Please try again")
		render(c, http.StatusOK, "add_pat.html", gin.H{"form_data": form.formData()})
		return
	}

	if err := configuration.DB.Create(&patient).Error; err != nil {
		if isUniqueViolation(err) {
			authentication.Flash(c, "error", "This Phone Number is already in the database")
		} else {
			authentication.Flash(c, "error", "Could not save the patient. Please try again")
		}
		render(c, http.StatusOK, "add_pat.html", gin.H{"form_data": form.formData()})
		return
	}

	render(c, http.StatusOK, "add_success.html", gin.H{"new_patient": patient})
}

// SearchPhonePage renders the phone lookup form.
func SearchPhonePage(c *gin.Context) {
	render(c, http.StatusOK, "search_phone.html", nil)
}

// SearchPhone looks a patient up by exact phone number and shows the visit log.
func SearchPhone(c *gin.Context) {
	tel := c.PostForm("phone")

	var patient models.Patient
	if err := configuration.DB.Where("patient_phone = ?", tel).First(&patient).Error; err != nil {
		authentication.Flash(c, "error", "Phone Number not Found. Please check the number and try again")
		c.Redirect(http.StatusFound, "/home/")
		return
	}

	var visits []models.Visit
	configuration.DB.Where("patient_id = ?", patient.ID).Find(&visits)
	render(c, http.StatusOK, "add_visit.html", gin.H{"patient": patient, "visit": visits})
}

// SearchNamePage renders the name lookup form.
func SearchNamePage(c *gin.Context) {
	render(c, http.StatusOK, "search_name.html", nil)
}

// SearchName does a case-insensitive substring search. A single hit goes
// straight to that patient's visit log, several hits get a disambiguation
// list.
func SearchName(c *gin.Context) {
	fragment := strings.TrimSpace(c.PostForm("name"))

	var names []models.Patient
	configuration.DB.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(fragment)+"%").Find(&names)

	switch {
	case len(names) > 1:
		render(c, http.StatusOK, "search_name_res.html", gin.H{"names": names})
	case len(names) == 1:
		c.Redirect(http.StatusFound, "/add_visit/"+names[0].PatientPhone)
	default:
		authentication.Flash(c, "error", fmt.Sprintf("Name Does Not Exist. Try Again or Register %s", fragment))
		c.Redirect(http.StatusFound, "/home/")
	}
}

// NameDetails redirects a disambiguation pick into the visit log.
func NameDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		authentication.Flash(c, "error", "Patient Not Found")
		c.Redirect(http.StatusFound, "/home/")
		return
	}

	var patient models.Patient
	if err := configuration.DB.First(&patient, id).Error; err != nil {
		authentication.Flash(c, "error", "Patient Not Found")
		c.Redirect(http.StatusFound, "/home/")
		return
	}
	c.Redirect(http.StatusFound, "/add_visit/"+patient.PatientPhone)
}

// SearchPatientPage renders the unified search form.
func SearchPatientPage(c *gin.Context) {
	render(c, http.StatusOK, "search_patient.html", nil)
}

// SearchPatient is the unified entry point: exact phone or first name match,
// with the full visit history newest first.
func SearchPatient(c *gin.Context) {
	searchType := c.DefaultPostForm("search_type", "phone")
	query := strings.TrimSpace(c.PostForm("query"))

	if query == "" {
		authentication.Flash(c, "error", "Please Enter Search Criteria")
		referer := c.Request.Referer()
		if referer == "" {
			referer = "/search_patient"
		}
		c.Redirect(http.StatusFound, referer)
		return
	}

	var patient models.Patient
	var err error
	if searchType == "phone" {
		err = configuration.DB.Where("patient_phone = ?", query).First(&patient).Error
	} else {
		err = configuration.DB.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").First(&patient).Error
	}
	if err != nil {
		authentication.Flash(c, "error", "Patient Not Found")
		c.Redirect(http.StatusFound, "/search_patient")
		return
	}

	var visits []models.Visit
	configuration.DB.Where("patient_id = ?", patient.ID).Order("date desc").Find(&visits)
	render(c, http.StatusOK, "add_visit.html", gin.H{
		"patient": patient,
		"visit":   visits,
		"now":     time.Now().Format("2006-01-02 15:04"),
	})
}

// Vitals shows the demographic record for one patient.
func Vitals(c *gin.Context) {
	phone := c.Param("phone")

	var patient models.Patient
	if err := configuration.DB.Where("patient_phone = ?", phone).First(&patient).Error; err != nil {
		authentication.Flash(c, "error", "Patient Not Found")
		c.Redirect(http.StatusFound, "/home/")
		return
	}
	render(c, http.StatusOK, "core.html", gin.H{"pat_vitals": patient})
}
