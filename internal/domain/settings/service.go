package settings

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Name            string `json:"name"`
	Size            string `json:"size"`
	Timezone        string `json:"timezone"`
	FiscalYearStart string `json:"fiscalYearStart"`
	Currency        string `json:"currency"`
	DateFormat      string `json:"dateFormat"`
	Address         string `json:"address"`
}

type Preferences struct {
	Email         bool `json:"email"`
	LeaveApproval bool `json:"leaveApproval"`
	Payroll       bool `json:"payroll"`
	Performance   bool `json:"performance"`
	System        bool `json:"system"`
}

type AuditEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

type Service struct {
	mu      sync.Mutex
	company Company
	prefs   Preferences
	audit   []AuditEntry

	Now func() time.Time
}

func NewService() *Service {
	now := time.Now
	return &Service{
		Now: now,
		company: Company{
			Name:            "HRX Inc.",
			Size:            "11-50",
			Timezone:        "America/Los_Angeles",
			FiscalYearStart: "January",
			Currency:        "USD",
			DateFormat:      "MM/DD/YYYY",
			Address:         "548 Market St, San Francisco, CA 94104",
		},
		prefs: Preferences{
			Email:         true,
			LeaveApproval: true,
			Payroll:       true,
			Performance:   false,
			System:        true,
		},
		audit: []AuditEntry{
			{ID: "aud-003", Action: "Updated payroll notification preference", Actor: "Sarah Chen", Timestamp: time.Date(2026, time.February, 20, 14, 32, 0, 0, time.UTC)},
			{ID: "aud-002", Action: "Changed fiscal year start to January", Actor: "Sarah Chen", Timestamp: time.Date(2026, time.February, 12, 9, 5, 0, 0, time.UTC)},
			{ID: "aud-001", Action: "Company profile created", Actor: "System", Timestamp: time.Date(2026, time.January, 2, 8, 0, 0, 0, time.UTC)},
		},
	}
}

func (s *Service) Company() Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.company
}

func (s *Service) UpdateCompany(company Company, actor string) Company {
	s.mu.Lock()
	s.company = company
	s.mu.Unlock()
	s.Record("Updated company settings", actor)
	return company
}

func (s *Service) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *Service) UpdatePreferences(prefs Preferences, actor string) Preferences {
	s.mu.Lock()
	s.prefs = prefs
	s.mu.Unlock()
	s.Record("Updated notification preferences", actor)
	return prefs
}

// Record prepends an audit entry so the log reads newest first.
func (s *Service) Record(action, actor string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append([]AuditEntry{{
		ID:        "aud-" + uuid.NewString(),
		Action:    action,
		Actor:     actor,
		Timestamp: s.Now(),
	}}, s.audit...)
}

func (s *Service) AuditLog() []AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]AuditEntry, len(s.audit))
	copy(snapshot, s.audit)
	return snapshot
}
