package services

import (
	"errors"
	"testing"

	"github.com/medcare/medcare-server/models"
)

func book(t *testing.T, f *fixture, patient string, doc, svc uint, hour, min int) *models.Appointment {
	t.Helper()
	created, err := f.scheduler.Create(&models.Appointment{
		PatientName: patient,
		DateTime:    at(hour, min),
		DoctorID:    doc,
		ServiceID:   svc,
	})
	if err != nil {
		t.Fatalf("Create(%s at %02d:%02d): %v", patient, hour, min, err)
	}
	return created
}

func TestCreateAppointment(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)

	created := book(t, f, "Ivan Petrov", doc, svc, 10, 0)

	if created.Status != models.StatusNew {
		t.Errorf("new appointment status = %s, want NEW", created.Status)
	}
	if created.Doctor.Name != "Dr. Adams" || created.Service.Name != "Consultation" {
		t.Errorf("associations not loaded: doctor %q, service %q", created.Doctor.Name, created.Service.Name)
	}
}

func TestCreateRejectsConflicts(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)

	book(t, f, "Ivan Petrov", doc, svc, 10, 0)

	conflicts := []struct {
		name string
		hour int
		min  int
	}{
		{"overlapping booking", 10, 15},
		{"outside working hours", 8, 30},
		{"runs past closing", 16, 45},
	}
	for _, tt := range conflicts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.scheduler.Create(&models.Appointment{
				PatientName: "Anna Ivanova",
				DateTime:    at(tt.hour, tt.min),
				DoctorID:    doc,
				ServiceID:   svc,
			})
			if !errors.Is(err, models.ErrSlotConflict) {
				t.Errorf("Create(%02d:%02d) error = %v, want ErrSlotConflict", tt.hour, tt.min, err)
			}
		})
	}
}

func TestCreateValidation(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)

	_, err := f.scheduler.Create(&models.Appointment{
		DateTime:  at(10, 0),
		DoctorID:  doc,
		ServiceID: svc,
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("Create without patient name: error = %v, want ErrValidation", err)
	}

	_, err = f.scheduler.Create(&models.Appointment{
		PatientName: "Ivan Petrov",
		DateTime:    at(10, 0),
		DoctorID:    doc,
		ServiceID:   99,
	})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Create with unknown service: error = %v, want ErrNotFound", err)
	}
}

func TestCancelReleasesSlot(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)

	first := book(t, f, "Ivan Petrov", doc, svc, 10, 0)

	if _, err := f.scheduler.UpdateStatus(first.ID, models.StatusCanceled); err != nil {
		t.Fatalf("UpdateStatus(CANCELED): %v", err)
	}

	rebooked := book(t, f, "Anna Ivanova", doc, svc, 10, 0)
	if rebooked.ID == first.ID {
		t.Error("rebooking reused the canceled appointment's id")
	}
}

func TestUpdateNameOnlySkipsSlotCheck(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)

	target := book(t, f, "Ivan Petrov", doc, svc, 10, 0)

	// The slot would fail a fresh check against itself, but a rename does
	// not touch the slot and must never conflict.
	target.PatientName = "Ivan P. Petrov"
	updated, err := f.scheduler.Update(target)
	if err != nil {
		t.Fatalf("Update(name only): %v", err)
	}
	if updated.PatientName != "Ivan P. Petrov" {
		t.Errorf("patient name = %q after update", updated.PatientName)
	}
	if !updated.DateTime.Equal(at(10, 0)) {
		t.Errorf("slot moved by a rename: %v", updated.DateTime)
	}
}

func TestUpdateMove(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)

	target := book(t, f, "Ivan Petrov", doc, svc, 10, 0)
	book(t, f, "Anna Ivanova", doc, svc, 11, 0)

	t.Run("to an occupied slot", func(t *testing.T) {
		moved := *target
		moved.DateTime = at(11, 15)
		if _, err := f.scheduler.Update(&moved); !errors.Is(err, models.ErrSlotConflict) {
			t.Errorf("Update error = %v, want ErrSlotConflict", err)
		}
	})

	t.Run("to a free slot", func(t *testing.T) {
		moved := *target
		moved.DateTime = at(14, 0)
		updated, err := f.scheduler.Update(&moved)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if !updated.DateTime.Equal(at(14, 0)) {
			t.Errorf("DateTime = %v after move", updated.DateTime)
		}
	})

	t.Run("back onto its own old slot", func(t *testing.T) {
		moved := *target
		moved.DateTime = at(10, 0)
		if _, err := f.scheduler.Update(&moved); err != nil {
			t.Fatalf("Update back to own slot: %v", err)
		}
	})
}

func TestUpdateMissingAppointment(t *testing.T) {
	f := newFixture()
	_, err := f.scheduler.Update(&models.Appointment{PatientName: "Nobody"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)

	a := book(t, f, "Ivan Petrov", doc, svc, 10, 0)

	confirmed, err := f.scheduler.UpdateStatus(a.ID, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("NEW -> CONFIRMED: %v", err)
	}
	if confirmed.Status != models.StatusConfirmed {
		t.Errorf("status = %s", confirmed.Status)
	}

	completed, err := f.scheduler.UpdateStatus(a.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("CONFIRMED -> COMPLETED: %v", err)
	}
	if completed.Status != models.StatusCompleted {
		t.Errorf("status = %s", completed.Status)
	}

	// Completed is terminal.
	if _, err := f.scheduler.UpdateStatus(a.ID, models.StatusCanceled); !errors.Is(err, models.ErrValidation) {
		t.Errorf("COMPLETED -> CANCELED error = %v, want ErrValidation", err)
	}

	// Rejected transition left the stored status alone.
	got, err := f.scheduler.Get(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusCompleted {
		t.Errorf("status after rejected transition = %s, want COMPLETED", got.Status)
	}
}

func TestUpdateStatusRejectsInvalid(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)
	a := book(t, f, "Ivan Petrov", doc, svc, 10, 0)

	if _, err := f.scheduler.UpdateStatus(a.ID, "PENDING"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("unknown status error = %v, want ErrValidation", err)
	}
	if _, err := f.scheduler.UpdateStatus(a.ID, models.StatusCompleted); !errors.Is(err, models.ErrValidation) {
		t.Errorf("NEW -> COMPLETED error = %v, want ErrValidation", err)
	}
	if _, err := f.scheduler.UpdateStatus(999, models.StatusConfirmed); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("missing appointment error = %v, want ErrNotFound", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)
	a := book(t, f, "Ivan Petrov", doc, svc, 10, 0)

	if err := f.scheduler.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.scheduler.Get(a.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
	if err := f.scheduler.Delete(a.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestListByDateRange(t *testing.T) {
	f := newFixture()
	doc := f.addDoctor("Dr. Adams", "Cardiology", "09:00-17:00")
	svc := f.addService("Consultation", 50, 30)

	book(t, f, "Ivan Petrov", doc, svc, 9, 0)
	book(t, f, "Anna Ivanova", doc, svc, 12, 0)
	book(t, f, "Petr Sidorov", doc, svc, 16, 0)

	got, err := f.scheduler.ListByDateRange(at(11, 0), at(13, 0))
	if err != nil {
		t.Fatalf("ListByDateRange: %v", err)
	}
	if len(got) != 1 || got[0].PatientName != "Anna Ivanova" {
		t.Errorf("ListByDateRange = %d results, want just Anna Ivanova", len(got))
	}

	// Both range ends are inclusive.
	got, err = f.scheduler.ListByDateRange(at(9, 0), at(16, 0))
	if err != nil {
		t.Fatalf("ListByDateRange: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("inclusive range returned %d results, want 3", len(got))
	}

	if _, err := f.scheduler.ListByDateRange(at(13, 0), at(11, 0)); !errors.Is(err, models.ErrValidation) {
		t.Errorf("inverted range error = %v, want ErrValidation", err)
	}
}
