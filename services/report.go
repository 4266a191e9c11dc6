package services

import (
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/medcare/medcare-server/models"
)

const reportTimeLayout = "2006-01-02 15:04"

// ReportService assembles period reports from the scheduler's query and
// aggregation output and renders them to CSV or XML. No business logic
// lives here: the exporters only format what the aggregator computed.
type ReportService struct {
	appointments *AppointmentService
}

func NewReportService(appointments *AppointmentService) *ReportService {
	return &ReportService{appointments: appointments}
}

func (s *ReportService) Generate(start, end time.Time) (*models.Report, error) {
	appointments, err := s.appointments.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	doctorStats, err := s.appointments.MostRequestedDoctors()
	if err != nil {
		return nil, err
	}
	serviceStats, err := s.appointments.MostRequestedServices()
	if err != nil {
		return nil, err
	}

	return &models.Report{
		Appointments: appointments,
		DoctorStats:  doctorStats,
		ServiceStats: serviceStats,
		StartDate:    start,
		EndDate:      end,
	}, nil
}

// ExportCSV renders the report as a CSV document: the appointment table
// followed by the doctor and service statistics sections.
func (s *ReportService) ExportCSV(report *models.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"ID", "Patient Name", "Doctor", "Specialization", "Date & Time", "Service", "Price", "Duration", "Status"},
	}
	for _, a := range report.Appointments {
		records = append(records, []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.PatientName,
			a.Doctor.Name,
			a.Doctor.Specialization,
			a.DateTime.Format(reportTimeLayout),
			a.Service.Name,
			fmt.Sprintf("%.2f", a.Service.Price),
			strconv.Itoa(a.Service.Duration),
			string(a.Status),
		})
	}

	records = append(records, []string{}, []string{"Doctor Statistics"}, []string{"Doctor", "Specialization", "Appointments"})
	for _, stat := range report.DoctorStats {
		records = append(records, []string{
			stat.Doctor.Name,
			stat.Doctor.Specialization,
			strconv.FormatInt(stat.Count, 10),
		})
	}

	records = append(records, []string{}, []string{"Service Statistics"}, []string{"Service", "Price", "Duration", "Appointments"})
	for _, stat := range report.ServiceStats {
		records = append(records, []string{
			stat.Service.Name,
			fmt.Sprintf("%.2f", stat.Service.Price),
			strconv.Itoa(stat.Service.Duration),
			strconv.FormatInt(stat.Count, 10),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type xmlReport struct {
	XMLName xml.Name         `xml:"statisticsReport"`
	Period  xmlReportPeriod  `xml:"reportPeriod"`
	Doctors []xmlDoctorStat  `xml:"topDoctors>doctor"`
	Services []xmlServiceStat `xml:"topServices>service"`
}

type xmlReportPeriod struct {
	StartDate string `xml:"startDate"`
	EndDate   string `xml:"endDate"`
}

type xmlDoctorStat struct {
	Name              string `xml:"name"`
	Specialization    string `xml:"specialization"`
	AppointmentsCount int64  `xml:"appointmentsCount"`
}

type xmlServiceStat struct {
	Name              string  `xml:"name"`
	Price             float64 `xml:"price"`
	AppointmentsCount int64   `xml:"appointmentsCount"`
}

// ExportXML renders the statistics part of the report as an XML document.
func (s *ReportService) ExportXML(report *models.Report) ([]byte, error) {
	doc := xmlReport{
		Period: xmlReportPeriod{
			StartDate: report.StartDate.Format(reportTimeLayout),
			EndDate:   report.EndDate.Format(reportTimeLayout),
		},
	}
	for _, stat := range report.DoctorStats {
		doc.Doctors = append(doc.Doctors, xmlDoctorStat{
			Name:              stat.Doctor.Name,
			Specialization:    stat.Doctor.Specialization,
			AppointmentsCount: stat.Count,
		})
	}
	for _, stat := range report.ServiceStats {
		doc.Services = append(doc.Services, xmlServiceStat{
			Name:              stat.Service.Name,
			Price:             stat.Service.Price,
			AppointmentsCount: stat.Count,
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
