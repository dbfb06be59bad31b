package routes

import (
	"github.com/charmin16/hosp-mgt/authentication"
	"github.com/charmin16/hosp-mgt/configuration"
	"github.com/charmin16/hosp-mgt/controllers"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore(configuration.SessionSecret())
	r.Use(sessions.Sessions(authentication.SessionName, store))

	// doctor auth
	r.GET("/", controllers.LoginPage)
	r.POST("/", controllers.DoctorLogin)
	r.GET("/register", controllers.RegisterPage)
	r.POST("/register", controllers.DoctorRegister)
	r.GET("/logout", controllers.Logout)

	// patient self-service
	r.GET("/register_patient", controllers.RegisterPatientPage)
	r.POST("/register_patient", controllers.RegisterPatient)
	r.GET("/login_patient", controllers.PatientLoginPage)
	r.POST("/login_patient", controllers.PatientLogin)

	// doctor-only pages
	doctor := r.Group("/")
	doctor.Use(authentication.DoctorAuthMiddleware())
	{
		doctor.GET("/home/", controllers.Home)
		doctor.GET("/add/", controllers.AddPatientPage)
		doctor.POST("/add/", controllers.AddPatient)
		doctor.GET("/search/", controllers.SearchPhonePage)
		doctor.POST("/search/", controllers.SearchPhone)
		doctor.GET("/search_name/", controllers.SearchNamePage)
		doctor.POST("/search_name/", controllers.SearchName)
		doctor.GET("/search_name/:id", controllers.NameDetails)
		doctor.GET("/search_patient", controllers.SearchPatientPage)
		doctor.POST("/search_patient", controllers.SearchPatient)
		doctor.GET("/add_visit/:phone", controllers.LogVisitPage)
		doctor.POST("/add_visit/:phone", controllers.LogVisit)
		doctor.GET("/vitals/:phone", controllers.Vitals)
		doctor.GET("/report/:phone", controllers.VisitReport)
		doctor.GET("/update/:phone/:visit_id", controllers.UpdateVisitPage)
		doctor.POST("/update/:phone/:visit_id", controllers.UpdateVisit)
		doctor.GET("/delete/:phone/:visit_id", controllers.DeleteVisit)
	}

	return r
}
