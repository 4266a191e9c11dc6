package services

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/medcare/medcare-server/models"
)

// In-memory stand-ins for the GORM repositories. The appointment fake
// hydrates the Doctor and Service associations on reads the way the real
// store preloads them, and its overlap query mirrors the SQL: blocking
// statuses only, half-open intervals, optional self-exclusion.

type fakeDoctorRepo struct {
	doctors map[uint]models.Doctor
	nextID  uint
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uint]models.Doctor)}
}

func (r *fakeDoctorRepo) Save(doctor *models.Doctor) error {
	if doctor.ID == 0 {
		r.nextID++
		doctor.ID = r.nextID
	}
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) FindByID(id uint) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, fmt.Errorf("%w: doctor %d", models.ErrNotFound, id)
	}
	return &d, nil
}

func (r *fakeDoctorRepo) FindAll() ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDoctorRepo) FindBySpecialization(specialization string) ([]models.Doctor, error) {
	all, _ := r.FindAll()
	var out []models.Doctor
	for _, d := range all {
		if d.Specialization == specialization {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.doctors[id]
	return ok, nil
}

func (r *fakeDoctorRepo) DeleteByID(id uint) error {
	delete(r.doctors, id)
	return nil
}

type fakeServiceRepo struct {
	services map[uint]models.MedicalService
	nextID   uint
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[uint]models.MedicalService)}
}

func (r *fakeServiceRepo) Save(service *models.MedicalService) error {
	if service.ID == 0 {
		r.nextID++
		service.ID = r.nextID
	}
	r.services[service.ID] = *service
	return nil
}

func (r *fakeServiceRepo) FindByID(id uint) (*models.MedicalService, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("%w: service %d", models.ErrNotFound, id)
	}
	return &s, nil
}

func (r *fakeServiceRepo) FindAll() ([]models.MedicalService, error) {
	out := make([]models.MedicalService, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeServiceRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.services[id]
	return ok, nil
}

func (r *fakeServiceRepo) DeleteByID(id uint) error {
	delete(r.services, id)
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[uint]models.Appointment
	order        []uint
	nextID       uint

	doctors  *fakeDoctorRepo
	services *fakeServiceRepo
}

func newFakeAppointmentRepo(doctors *fakeDoctorRepo, services *fakeServiceRepo) *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		appointments: make(map[uint]models.Appointment),
		doctors:      doctors,
		services:     services,
	}
}

func (r *fakeAppointmentRepo) hydrate(a models.Appointment) models.Appointment {
	if d, ok := r.doctors.doctors[a.DoctorID]; ok {
		a.Doctor = d
	}
	if s, ok := r.services.services[a.ServiceID]; ok {
		a.Service = s
	}
	return a
}

func (r *fakeAppointmentRepo) Save(appointment *models.Appointment) error {
	if appointment.ID == 0 {
		r.nextID++
		appointment.ID = r.nextID
		r.order = append(r.order, appointment.ID)
	}
	if appointment.Status == "" {
		appointment.Status = models.StatusNew
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(id uint) (*models.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, fmt.Errorf("%w: appointment %d", models.ErrNotFound, id)
	}
	a = r.hydrate(a)
	return &a, nil
}

func (r *fakeAppointmentRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.appointments[id]
	return ok, nil
}

func (r *fakeAppointmentRepo) DeleteByID(id uint) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) FindAll() ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.order))
	for _, id := range r.order {
		if a, ok := r.appointments[id]; ok {
			out = append(out, r.hydrate(a))
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByDateRange(start, end time.Time) ([]models.Appointment, error) {
	all, _ := r.FindAll()
	var out []models.Appointment
	for _, a := range all {
		if !a.DateTime.Before(start) && !a.DateTime.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindOverlapping(doctorID uint, start, end time.Time, excludeID *uint) ([]models.Appointment, error) {
	all, _ := r.FindAll()
	var out []models.Appointment
	for _, a := range all {
		if a.DoctorID != doctorID || !a.Status.Blocking() {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.DateTime.Before(end) && a.EndTime().After(start) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByStatusAndDateRange(status models.AppointmentStatus, start, end time.Time) ([]models.Appointment, error) {
	ranged, _ := r.FindByDateRange(start, end)
	var out []models.Appointment
	for _, a := range ranged {
		if a.Status == status {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

type fakeUserRepo struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]models.User)}
}

func (r *fakeUserRepo) Save(user *models.User) error {
	if user.ID == 0 {
		r.nextID++
		user.ID = r.nextID
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", models.ErrNotFound, id)
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %q", models.ErrNotFound, username)
}

func (r *fakeUserRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	_, err := r.FindByUsername(username)
	return err == nil, nil
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) DeleteByID(id uint) error {
	delete(r.users, id)
	return nil
}

// fixture wires the full scheduling stack over the in-memory stores.
type fixture struct {
	doctors      *fakeDoctorRepo
	services     *fakeServiceRepo
	appointments *fakeAppointmentRepo
	availability *AvailabilityChecker
	scheduler    *AppointmentService
}

func newFixture() *fixture {
	doctors := newFakeDoctorRepo()
	services := newFakeServiceRepo()
	appointments := newFakeAppointmentRepo(doctors, services)
	availability := NewAvailabilityChecker(doctors, appointments)
	return &fixture{
		doctors:      doctors,
		services:     services,
		appointments: appointments,
		availability: availability,
		scheduler:    NewAppointmentService(appointments, services, availability, zap.NewNop()),
	}
}

func (f *fixture) addDoctor(name, specialization, workHours string) uint {
	d := models.Doctor{Name: name, Specialization: specialization, WorkHours: workHours}
	_ = f.doctors.Save(&d)
	return d.ID
}

func (f *fixture) addService(name string, price float64, duration int) uint {
	s := models.MedicalService{Name: name, Price: price, Duration: duration}
	_ = f.services.Save(&s)
	return s.ID
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}
