package cron

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/medcare/medcare-server/config"
	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/repository"
	"github.com/medcare/medcare-server/utils"
)

// StartCronJobs initializes the scheduler that mails the day's
// schedule to the reception inbox every morning.
func StartCronJobs(appointments repository.AppointmentRepository) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("0 7 * * *", func() {
		sendDailySchedule(appointments)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add cron job: %w", err)
	}
	c.Start()
	utils.GetLogger().Info("cron scheduler started for daily schedule emails")
	return c, nil
}

// sendDailySchedule collects today's pending and confirmed appointments
// and sends them to reception in a single email.
func sendDailySchedule(repo repository.AppointmentRepository) {
	log := utils.GetLogger()

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	var todays []models.Appointment
	for _, status := range []models.AppointmentStatus{models.StatusNew, models.StatusConfirmed} {
		batch, err := repo.FindByStatusAndDateRange(status, dayStart, dayEnd)
		if err != nil {
			log.Error("failed to fetch appointments for daily schedule", zap.Error(err))
			return
		}
		todays = append(todays, batch...)
	}

	if len(todays) == 0 {
		log.Info("no appointments scheduled today, skipping reception email")
		return
	}

	to := config.AppConfig.ReceptionEmail
	if to == "" {
		log.Warn("reception email not configured, skipping daily schedule")
		return
	}

	subject := fmt.Sprintf("Clinic schedule for %s", dayStart.Format("2006-01-02"))
	if err := utils.SendEmail(to, subject, buildScheduleBody(todays)); err != nil {
		log.Error("failed to send daily schedule email", zap.Error(err))
		return
	}
	log.Info("sent daily schedule email",
		zap.String("to", to),
		zap.Int("appointments", len(todays)))
}

func buildScheduleBody(appointments []models.Appointment) string {
	var b strings.Builder
	b.WriteString("<p>Good morning,</p>")
	b.WriteString("<p>Today's appointments:</p><ul>")
	for _, a := range appointments {
		fmt.Fprintf(&b, "<li><strong>%s</strong> — %s with Dr. %s (%s, %s)</li>",
			a.DateTime.Format("15:04"),
			a.PatientName,
			a.Doctor.Name,
			a.Service.Name,
			a.Status)
	}
	b.WriteString("</ul><p>Best regards,<br>MedCare</p>")
	return b.String()
}
