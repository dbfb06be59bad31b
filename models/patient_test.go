package models

import (
	"fmt"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var refPattern = regexp.MustCompile(`^PT-\d{4}$`)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "clinic.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Patient{}, &Visit{}))
	return db
}

func TestNewPatRefFormat(t *testing.T) {
	for i := 0; i < 500; i++ {
		assert.Regexp(t, refPattern, NewPatRef())
	}
}

func TestAssignPatRefUniqueAcrossPatients(t *testing.T) {
	db := testDB(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		patient := Patient{
			Name:                "Test Patient",
			Gender:              "F",
			Age:                 30,
			PatientPhone:        fmt.Sprintf("070%08d", i),
			NextOfKin:           "NOK",
			PresentingComplaint: "none",
			AdmissionDate:       time.Now(),
		}
		require.NoError(t, AssignPatRef(db, &patient))
		assert.Regexp(t, refPattern, patient.PatRef)
		assert.False(t, seen[patient.PatRef], "reference %s issued twice", patient.PatRef)
		seen[patient.PatRef] = true
		require.NoError(t, db.Create(&patient).Error)
	}
}

func TestAssignPatRefSkipsTakenCodes(t *testing.T) {
	db := testDB(t)

	taken := Patient{
		Name: "First", Gender: "M", Age: 40,
		PatRef: "PT-1234", PatientPhone: "07000000001",
		NextOfKin: "NOK", PresentingComplaint: "none", AdmissionDate: time.Now(),
	}
	require.NoError(t, db.Create(&taken).Error)

	next := Patient{}
	require.NoError(t, AssignPatRef(db, &next))
	assert.NotEqual(t, "PT-1234", next.PatRef)
}
