package models

import "time"

// DoctorStat pairs a doctor with how many appointments reference them.
type DoctorStat struct {
	Doctor Doctor `json:"doctor"`
	Count  int64  `json:"count"`
}

// ServiceStat pairs a medical service with how many appointments reference it.
type ServiceStat struct {
	Service MedicalService `json:"service"`
	Count   int64          `json:"count"`
}

// Report bundles the appointments of a period with the popularity
// statistics derived from them.
type Report struct {
	Appointments []Appointment `json:"appointments"`
	DoctorStats  []DoctorStat  `json:"doctor_stats"`
	ServiceStats []ServiceStat `json:"service_stats"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
}
