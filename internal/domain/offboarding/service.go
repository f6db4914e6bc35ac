// Package offboarding tracks leaver cases and their full-and-final (FNF)
// settlements: the closing payment owed to a departing employee for unused
// annual leave, net of any notice-period shortfall recovery.
package offboarding

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrx/internal/domain/data"
)

// noticeDays is the contractual notice period; workingDaysPerYear converts an
// annual salary into the daily rate used by settlements.
const (
	noticeDays         = 30
	workingDaysPerYear = 260
)

var ErrNotFound = errors.New("offboarding case not found")

type ExitInterview string

const (
	InterviewPending   ExitInterview = "Pending"
	InterviewScheduled ExitInterview = "Scheduled"
	InterviewCompleted ExitInterview = "Completed"
)

type CaseStatus string

const (
	CaseInProgress CaseStatus = "In Progress"
	CaseCompleted  CaseStatus = "Completed"
)

type CalculationStatus string

const (
	CalcDrafting CalculationStatus = "Drafting"
	CalcClosed   CalculationStatus = "Closed"
)

type Clearance struct {
	IT    bool `json:"it"`
	Admin bool `json:"admin"`
	HR    bool `json:"hr"`
}

type Case struct {
	ID              string        `json:"id"`
	EmployeeID      string        `json:"employeeId"`
	EmployeeName    string        `json:"employeeName"`
	ResignationDate string        `json:"resignationDate"`
	LastWorkingDay  string        `json:"lastWorkingDay"`
	ExitInterview   ExitInterview `json:"exitInterview"`
	Clearance       Clearance     `json:"clearance"`
	Status          CaseStatus    `json:"status"`
}

type Settlement struct {
	ID            string            `json:"id"`
	CaseID        string            `json:"caseId"`
	EmployeeID    string            `json:"employeeId"`
	EmployeeName  string            `json:"employeeName"`
	EndDate       string            `json:"endDate"`
	Calculation   CalculationStatus `json:"calculation"`
	Amount        float64           `json:"amount"`
	LettersIssued bool              `json:"lettersIssued"`
}

type Service struct {
	mu          sync.Mutex
	cases       []Case
	settlements []Settlement
}

func NewService() *Service {
	return &Service{
		cases: []Case{
			{
				ID:              "off-001",
				EmployeeID:      "emp-006",
				EmployeeName:    "David Kim",
				ResignationDate: "2026-02-01",
				LastWorkingDay:  "2026-02-20",
				ExitInterview:   InterviewScheduled,
				Clearance:       Clearance{IT: true},
				Status:          CaseInProgress,
			},
		},
		settlements: []Settlement{
			{
				ID:           "fnf-001",
				CaseID:       "off-001",
				EmployeeID:   "emp-006",
				EmployeeName: "David Kim",
				EndDate:      "2026-02-20",
				Calculation:  CalcDrafting,
			},
		},
	}
}

func (s *Service) Cases() []Case {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]Case, len(s.cases))
	copy(snapshot, s.cases)
	return snapshot
}

func (s *Service) Settlements() []Settlement {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]Settlement, len(s.settlements))
	copy(snapshot, s.settlements)
	return snapshot
}

// Initiate opens a case for an employee and drafts its empty settlement.
func (s *Service) Initiate(employeeID, resignationDate, lastWorkingDay string) (Case, error) {
	emp, ok := data.EmployeeByID(employeeID)
	if !ok {
		return Case{}, fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}

	offCase := Case{
		ID:              "off-" + uuid.NewString(),
		EmployeeID:      emp.ID,
		EmployeeName:    emp.Name,
		ResignationDate: resignationDate,
		LastWorkingDay:  lastWorkingDay,
		ExitInterview:   InterviewPending,
		Status:          CaseInProgress,
	}
	settlement := Settlement{
		ID:           "fnf-" + uuid.NewString(),
		CaseID:       offCase.ID,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		EndDate:      lastWorkingDay,
		Calculation:  CalcDrafting,
	}

	s.mu.Lock()
	s.cases = append([]Case{offCase}, s.cases...)
	s.settlements = append([]Settlement{settlement}, s.settlements...)
	s.mu.Unlock()
	return offCase, nil
}

// ComputeFNF settles a drafted case: unused annual leave is paid out at the
// daily rate, and any notice served short of the contractual period is
// recovered at the same rate. The result is rounded to whole currency units
// and the settlement moves from Drafting to Closed.
func (s *Service) ComputeFNF(caseID string) (Settlement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var offCase *Case
	for i := range s.cases {
		if s.cases[i].ID == caseID {
			offCase = &s.cases[i]
			break
		}
	}
	if offCase == nil {
		return Settlement{}, fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}

	emp, ok := data.EmployeeByID(offCase.EmployeeID)
	if !ok {
		return Settlement{}, fmt.Errorf("employee %s: %w", offCase.EmployeeID, ErrNotFound)
	}
	balance, ok := data.LeaveBalanceFor(emp.ID)
	if !ok {
		return Settlement{}, fmt.Errorf("leave balance for %s: %w", emp.ID, ErrNotFound)
	}

	resigned, err := time.Parse("2006-01-02", offCase.ResignationDate)
	if err != nil {
		return Settlement{}, fmt.Errorf("parse resignation date: %w", err)
	}
	lastDay, err := time.Parse("2006-01-02", offCase.LastWorkingDay)
	if err != nil {
		return Settlement{}, fmt.Errorf("parse last working day: %w", err)
	}

	dailyRate := emp.Salary / workingDaysPerYear
	payout := float64(balance.Annual) * dailyRate

	served := int(lastDay.Sub(resigned).Hours() / 24)
	shortfall := noticeDays - served
	if shortfall < 0 {
		shortfall = 0
	}
	amount := math.Round(payout - float64(shortfall)*dailyRate)

	for i := range s.settlements {
		if s.settlements[i].CaseID == caseID {
			s.settlements[i].Amount = amount
			s.settlements[i].Calculation = CalcClosed
			return s.settlements[i], nil
		}
	}
	return Settlement{}, fmt.Errorf("settlement for case %s: %w", caseID, ErrNotFound)
}
