package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/charmin16/hosp-mgt/authentication"
	"github.com/charmin16/hosp-mgt/configuration"
	"github.com/charmin16/hosp-mgt/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// VisitReport downloads a patient's full visit history as a PDF.
func VisitReport(c *gin.Context) {
	phone := c.Param("phone")

	var patient models.Patient
	if err := configuration.DB.Where("patient_phone = ?", phone).First(&patient).Error; err != nil {
		authentication.Flash(c, "error", "Patient Not Found")
		c.Redirect(http.StatusFound, "/home/")
		return
	}

	var visits []models.Visit
	configuration.DB.Where("patient_id = ?", patient.ID).Order("date").Find(&visits)

	report, err := GenerateVisitReportPDF(patient, visits)
	if err != nil {
		authentication.Flash(c, "error", "Could not generate the report. Please try again")
		c.Redirect(http.StatusFound, "/add_visit/"+phone)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", patient.PatRef+"-history.pdf"))
	c.Data(http.StatusOK, "application/pdf", report)
}

// GenerateVisitReportPDF lays out the demographic record followed by one
// block per visit, oldest first.
func GenerateVisitReportPDF(patient models.Patient, visits []models.Visit) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 64, 128)
	pdf.CellFormat(0, 10, "Clinic Visit History", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Report %s generated %s", uuid.New().String(), time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Patient", "1", 1, "C", false, 0, "")
	addReportDetail(pdf, "Reference", patient.PatRef, true)
	addReportDetail(pdf, "Name", patient.Name, true)
	addReportDetail(pdf, "Gender", patient.Gender, true)
	addReportDetail(pdf, "Age", fmt.Sprintf("%d", patient.Age), true)
	addReportDetail(pdf, "Blood Group", patient.BloodGroup, true)
	addReportDetail(pdf, "Phone", patient.PatientPhone, true)
	addReportDetail(pdf, "Admitted", patient.AdmissionDate.Format("2006-01-02"), true)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Visits (%d)", len(visits)), "1", 1, "C", false, 0, "")
	for _, visit := range visits {
		addReportDetail(pdf, "Date", visit.Date.Format("2006-01-02"), false)
		addReportDetail(pdf, "Physician", visit.AttendingPhysician, false)
		addReportDetail(pdf, "Diagnosis", visit.Diagnosis, false)
		addReportDetail(pdf, "Tests", visit.Tests, false)
		addReportDetail(pdf, "Medication", visit.Medication, false)
		if visit.NextAppointment != nil {
			addReportDetail(pdf, "Next Appointment", visit.NextAppointment.Format("2006-01-02"), false)
		}
		pdf.SetY(pdf.GetY() + 4)
	}

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 10, "This is a computer generated report", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// addReportDetail adds one label/value line to the PDF.
func addReportDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
