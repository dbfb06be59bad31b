package authentication

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmin16/hosp-mgt/configuration"
	"github.com/charmin16/hosp-mgt/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const doctorTokenKey = "doctor_token"

// Generating token for the logged-in doctor
func GenerateDoctorToken(doctor models.Doctor) (string, error) {
	claims := &models.DoctorClaims{
		Name:     doctor.Name,
		Username: doctor.Username,
		StaffID:  doctor.StaffID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(configuration.JWTSecret())
}

// verify doctor token
func ParseDoctorToken(tokenString string) (*models.DoctorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.DoctorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return configuration.JWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*models.DoctorClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// SetDoctorSession writes the doctor's signed identity into the session cookie.
func SetDoctorSession(c *gin.Context, doctor models.Doctor) error {
	token, err := GenerateDoctorToken(doctor)
	if err != nil {
		return err
	}
	session := sessions.Default(c)
	session.Set(doctorTokenKey, token)
	return session.Save()
}

// CurrentDoctor returns the authenticated doctor from the session, if any.
func CurrentDoctor(c *gin.Context) (*models.DoctorClaims, bool) {
	session := sessions.Default(c)
	raw, ok := session.Get(doctorTokenKey).(string)
	if !ok || raw == "" {
		return nil, false
	}
	claims, err := ParseDoctorToken(raw)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// ClearDoctorSession removes only the doctor identity; flashes queued on the
// same session survive the logout redirect.
func ClearDoctorSession(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(doctorTokenKey)
	session.Save()
}

// Doctor auth middleware
func DoctorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentDoctor(c)
		if !ok {
			Flash(c, "error", "You must be logged in to access this page")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Set("doctor", claims)
		c.Next()
	}
}

// MustDoctor pulls the principal the middleware stored on the context.
func MustDoctor(c *gin.Context) *models.DoctorClaims {
	return c.MustGet("doctor").(*models.DoctorClaims)
}
