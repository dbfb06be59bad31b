package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/charmin16/hosp-mgt/configuration"
	"github.com/charmin16/hosp-mgt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRegisterThenLoginByStaffID(t *testing.T) {
	cl := newClient(t)
	cl.registerDoctor("Amy", "1", "amy", "pw")

	// staff ID works in the same field as the username
	w := cl.post("/", url.Values{"username": {"1"}, "password": {"pw"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/home/", w.Header().Get("Location"))

	home := cl.follow(w)
	assert.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "Amy")
	assert.Contains(t, home.Body.String(), "Login Successful")
}

func TestDoctorLoginWrongPassword(t *testing.T) {
	cl := newClient(t)
	cl.registerDoctor("Amy", "1", "amy", "pw")

	w := cl.post("/", url.Values{"username": {"1"}, "password": {"wrong"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	page := cl.follow(w)
	assert.Contains(t, page.Body.String(), "Invalid username or password")
}

func TestDoctorRegisterDuplicateStaffIDSamePassword(t *testing.T) {
	cl := newClient(t)
	cl.registerDoctor("Amy", "1", "amy", "pw")

	w := cl.post("/register", url.Values{
		"Name": {"Amy Again"}, "StaffID": {"1"}, "username": {"amy2"}, "password": {"pw"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	page := cl.follow(w)
	assert.Contains(t, page.Body.String(), "already been registered")

	var count int64
	configuration.DB.Model(&models.Doctor{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDoctorRoutesRequireSession(t *testing.T) {
	cl := newClient(t)

	for _, path := range []string{"/home/", "/add/", "/search_patient", "/add_visit/07012345678"} {
		w := cl.get(path)
		require.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}

	page := cl.get("/")
	assert.Contains(t, page.Body.String(), "You must be logged in to access this page")
}

func TestLogoutClearsDoctorSession(t *testing.T) {
	cl := newClient(t)
	cl.loginDoctor()

	w := cl.get("/logout")
	require.Equal(t, http.StatusFound, w.Code)
	page := cl.follow(w)
	assert.Contains(t, page.Body.String(), "You have been logged out")

	again := cl.get("/home/")
	assert.Equal(t, http.StatusFound, again.Code)
	assert.Equal(t, "/", again.Header().Get("Location"))
}
