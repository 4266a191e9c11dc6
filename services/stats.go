package services

import (
	"sort"

	"github.com/medcare/medcare-server/models"
)

// MostRequestedDoctors counts appointments per doctor across the whole
// store, most requested first. Counts are keyed by doctor id; the full
// record is attached from the first appointment that referenced it. Ties
// keep the store's natural order (stable sort), and the result is
// recomputed on every call.
func (s *AppointmentService) MostRequestedDoctors() ([]models.DoctorStat, error) {
	appointments, err := s.appointments.FindAll()
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64)
	doctors := make(map[uint]models.Doctor)
	var order []uint

	for _, a := range appointments {
		if _, seen := counts[a.DoctorID]; !seen {
			order = append(order, a.DoctorID)
			doctors[a.DoctorID] = a.Doctor
		}
		counts[a.DoctorID]++
	}

	stats := make([]models.DoctorStat, 0, len(order))
	for _, id := range order {
		stats = append(stats, models.DoctorStat{Doctor: doctors[id], Count: counts[id]})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats, nil
}

// MostRequestedServices is the service-keyed counterpart of
// MostRequestedDoctors.
func (s *AppointmentService) MostRequestedServices() ([]models.ServiceStat, error) {
	appointments, err := s.appointments.FindAll()
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64)
	services := make(map[uint]models.MedicalService)
	var order []uint

	for _, a := range appointments {
		if _, seen := counts[a.ServiceID]; !seen {
			order = append(order, a.ServiceID)
			services[a.ServiceID] = a.Service
		}
		counts[a.ServiceID]++
	}

	stats := make([]models.ServiceStat, 0, len(order))
	for _, id := range order {
		stats = append(stats, models.ServiceStat{Service: services[id], Count: counts[id]})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats, nil
}
