package leave

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrx/internal/domain/data"
)

var ErrNotFound = errors.New("leave request not found")

// Notifier receives user-facing messages for submitted requests.
type Notifier interface {
	Add(message string)
}

// Entitlement totals backing the balance cards.
var entitlements = map[data.LeaveType]int{
	data.LeaveAnnual:        20,
	data.LeaveSick:          10,
	data.LeaveMaternity:     90,
	data.LeavePaternity:     14,
	data.LeaveUnpaid:        30,
	data.LeaveCompassionate: 5,
}

type BalanceCard struct {
	Type      data.LeaveType `json:"type"`
	Remaining int            `json:"remaining"`
	Total     int            `json:"total"`
}

type Summary struct {
	RequestsThisMonth int `json:"requestsThisMonth"`
	Pending           int `json:"pending"`
	Approved          int `json:"approved"`
	Rejected          int `json:"rejected"`
}

// Service keeps a mutable copy of the fixture requests. Mutations are process
// local and vanish on restart, matching the demo semantics.
type Service struct {
	mu       sync.Mutex
	requests []data.LeaveRequest
	notifier Notifier

	// Now is overridable in tests.
	Now func() time.Time
}

func NewService(notifier Notifier) *Service {
	requests := make([]data.LeaveRequest, len(data.LeaveRequests))
	copy(requests, data.LeaveRequests)
	return &Service{
		requests: requests,
		notifier: notifier,
		Now:      time.Now,
	}
}

// Submit creates a Pending request, prepends it and emits one notification
// naming the employee and the day count.
func (s *Service) Submit(employeeID string, leaveType data.LeaveType, startDate, endDate, reason string) (data.LeaveRequest, error) {
	emp, ok := data.EmployeeByID(employeeID)
	if !ok {
		return data.LeaveRequest{}, fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return data.LeaveRequest{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return data.LeaveRequest{}, fmt.Errorf("invalid end date: %w", err)
	}
	days, err := CalculateDays(start, end)
	if err != nil {
		return data.LeaveRequest{}, err
	}

	approverID := emp.ManagerID
	if approverID == "" {
		approverID = "emp-002"
	}

	request := data.LeaveRequest{
		ID:          "lv-" + uuid.NewString(),
		EmployeeID:  emp.ID,
		Type:        leaveType,
		StartDate:   startDate,
		EndDate:     endDate,
		Days:        days,
		Reason:      reason,
		Status:      data.LeavePending,
		ApproverID:  approverID,
		AppliedDate: s.Now().UTC().Format("2006-01-02"),
	}

	s.mu.Lock()
	s.requests = append([]data.LeaveRequest{request}, s.requests...)
	s.mu.Unlock()

	if s.notifier != nil {
		plural := ""
		if days != 1 {
			plural = "s"
		}
		s.notifier.Add(fmt.Sprintf("New %s leave requested by %s (%d day%s)", leaveType, emp.Name, days, plural))
	}
	return request, nil
}

func (s *Service) Approve(id, approverID string) (data.LeaveRequest, error) {
	return s.setStatus(id, approverID, data.LeaveApproved)
}

func (s *Service) Reject(id, approverID string) (data.LeaveRequest, error) {
	return s.setStatus(id, approverID, data.LeaveRejected)
}

func (s *Service) setStatus(id, approverID string, status data.LeaveStatus) (data.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = status
			if approverID != "" {
				s.requests[i].ApproverID = approverID
			}
			return s.requests[i], nil
		}
	}
	return data.LeaveRequest{}, ErrNotFound
}

// List filters conjunctively by status and employee; empty or "all" wildcards.
func (s *Service) List(status, employeeID string) []data.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []data.LeaveRequest
	for _, request := range s.requests {
		if !matchesStatus(request, status) {
			continue
		}
		if employeeID != "" && employeeID != "all" && request.EmployeeID != employeeID {
			continue
		}
		matches = append(matches, request)
	}
	return matches
}

func matchesStatus(request data.LeaveRequest, status string) bool {
	if status == "" || strings.EqualFold(status, "all") {
		return true
	}
	return strings.EqualFold(string(request.Status), status)
}

func (s *Service) Get(id string) (data.LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, request := range s.requests {
		if request.ID == id {
			return request, true
		}
	}
	return data.LeaveRequest{}, false
}

// Summarize counts requests applied in the given month ("2026-02") and the
// status totals across the whole list.
func (s *Service) Summarize(month string) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary Summary
	for _, request := range s.requests {
		if strings.HasPrefix(request.AppliedDate, month) {
			summary.RequestsThisMonth++
		}
		switch request.Status {
		case data.LeavePending:
			summary.Pending++
		case data.LeaveApproved:
			summary.Approved++
		case data.LeaveRejected:
			summary.Rejected++
		}
	}
	return summary
}

// Calendar builds the month view over the current request list.
func (s *Service) Calendar(year int, month time.Month, today time.Time) Calendar {
	s.mu.Lock()
	requests := make([]data.LeaveRequest, len(s.requests))
	copy(requests, s.requests)
	s.mu.Unlock()
	return BuildCalendar(year, month, today, requests)
}

// BalanceCards returns the per-type remaining counters with entitlement totals.
func (s *Service) BalanceCards(employeeID string) ([]BalanceCard, error) {
	balance, ok := data.LeaveBalanceFor(employeeID)
	if !ok {
		return nil, fmt.Errorf("balance for %s: %w", employeeID, ErrNotFound)
	}
	return []BalanceCard{
		{Type: data.LeaveAnnual, Remaining: balance.Annual, Total: entitlements[data.LeaveAnnual]},
		{Type: data.LeaveSick, Remaining: balance.Sick, Total: entitlements[data.LeaveSick]},
		{Type: data.LeaveMaternity, Remaining: balance.Maternity, Total: entitlements[data.LeaveMaternity]},
		{Type: data.LeavePaternity, Remaining: balance.Paternity, Total: entitlements[data.LeavePaternity]},
		{Type: data.LeaveUnpaid, Remaining: balance.Unpaid, Total: entitlements[data.LeaveUnpaid]},
		{Type: data.LeaveCompassionate, Remaining: balance.Compassionate, Total: entitlements[data.LeaveCompassionate]},
	}, nil
}
