package cron

import (
	"strings"
	"testing"
	"time"

	"github.com/medcare/medcare-server/models"
)

func TestBuildScheduleBody(t *testing.T) {
	appointments := []models.Appointment{
		{
			PatientName: "Ivan Petrov",
			DateTime:    time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
			Status:      models.StatusConfirmed,
			Doctor:      models.Doctor{Name: "Adams"},
			Service:     models.MedicalService{Name: "Consultation"},
		},
		{
			PatientName: "Anna Ivanova",
			DateTime:    time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
			Status:      models.StatusNew,
			Doctor:      models.Doctor{Name: "Brown"},
			Service:     models.MedicalService{Name: "Blood Test"},
		},
	}

	body := buildScheduleBody(appointments)

	for _, want := range []string{
		"09:30",
		"Ivan Petrov",
		"Dr. Adams",
		"Consultation",
		"CONFIRMED",
		"11:00",
		"Anna Ivanova",
		"Blood Test",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("schedule body missing %q:\n%s", want, body)
		}
	}
}
