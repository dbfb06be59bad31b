package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmin16/hosp-mgt/configuration"
	"github.com/charmin16/hosp-mgt/models"
	"github.com/charmin16/hosp-mgt/routes"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// client drives the real route table over httptest, carrying the session
// cookie between requests the way a browser would.
type client struct {
	t       *testing.T
	engine  *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "clinic.db")), &gorm.Config{})
	require.NoError(t, err)
	configuration.Migrate(db)
	configuration.DB = db

	engine := routes.SetupRoutes()
	engine.LoadHTMLGlob("../templates/*")

	return &client{t: t, engine: engine, cookies: map[string]*http.Cookie{}}
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	cl.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	cl.engine.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		cl.cookies[ck.Name] = ck
	}
	return w
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do(http.MethodGet, path, nil)
}

func (cl *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	return cl.do(http.MethodPost, path, form)
}

// follow chases one redirect so flash messages queued by the previous
// request show up in the body.
func (cl *client) follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	cl.t.Helper()
	require.Contains(cl.t, []int{http.StatusFound, http.StatusMovedPermanently}, w.Code, "expected a redirect, body: %s", w.Body.String())
	return cl.get(w.Header().Get("Location"))
}

// registerDoctor creates a doctor account through the public form.
func (cl *client) registerDoctor(name, staffID, username, password string) {
	cl.t.Helper()
	w := cl.post("/register", url.Values{
		"Name":     {name},
		"StaffID":  {staffID},
		"username": {username},
		"password": {password},
	})
	require.Equal(cl.t, http.StatusFound, w.Code)
}

// loginDoctor registers and signs in a default doctor for tests that just
// need an authenticated session.
func (cl *client) loginDoctor() {
	cl.t.Helper()
	cl.registerDoctor("Amy", "1", "amy", "pw")
	w := cl.post("/", url.Values{"username": {"amy"}, "password": {"pw"}})
	require.Equal(cl.t, http.StatusFound, w.Code)
	require.Equal(cl.t, "/home/", w.Header().Get("Location"))
}

// addPatient submits the intake form for a patient with the given name,
// phone and date of birth.
func (cl *client) addPatient(name, phone, dob string) *httptest.ResponseRecorder {
	cl.t.Helper()
	return cl.post("/add/", url.Values{
		"name":    {name},
		"gender":  {"F"},
		"dob":     {dob},
		"patient": {phone},
		"nok":     {"Next Of Kin"},
		"biw":     {"Headache"},
		"blood":   {"O+"},
	})
}

func patientByPhone(t *testing.T, phone string) models.Patient {
	t.Helper()
	var patient models.Patient
	require.NoError(t, configuration.DB.Where("patient_phone = ?", phone).First(&patient).Error)
	return patient
}
