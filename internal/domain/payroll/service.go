package payroll

import (
	"errors"
	"math"
	"sync"

	"hrx/internal/domain/data"
)

var ErrNotFound = errors.New("payroll record not found")

type Totals struct {
	NetPay       float64 `json:"netPay"`
	Tax          float64 `json:"tax"`
	PaidCount    int     `json:"paidCount"`
	PendingCount int     `json:"pendingCount"`
}

type DepartmentShare struct {
	Department data.Department `json:"department"`
	MonthlyPay float64         `json:"monthlyPay"`
	Percent    int             `json:"percent"`
}

type Service struct {
	mu      sync.Mutex
	records []data.PayrollRecord
}

func NewService() *Service {
	records := make([]data.PayrollRecord, len(data.PayrollRecords))
	copy(records, data.PayrollRecords)
	return &Service{records: records}
}

// List filters conjunctively by employee and month; empty or "all" wildcards.
func (s *Service) List(employeeID, month string) []data.PayrollRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []data.PayrollRecord
	for _, record := range s.records {
		if employeeID != "" && employeeID != "all" && record.EmployeeID != employeeID {
			continue
		}
		if month != "" && month != "all" && record.Month != month {
			continue
		}
		matches = append(matches, record)
	}
	return matches
}

func (s *Service) Get(id string) (data.PayrollRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.records {
		if record.ID == id {
			return record, true
		}
	}
	return data.PayrollRecord{}, false
}

// Months returns the distinct months present, in record order.
func (s *Service) Months() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	var months []string
	for _, record := range s.records {
		if !seen[record.Month] {
			seen[record.Month] = true
			months = append(months, record.Month)
		}
	}
	return months
}

// Summarize totals the given records for the stat cards.
func Summarize(records []data.PayrollRecord) Totals {
	var totals Totals
	for _, record := range records {
		totals.NetPay += record.NetPay
		totals.Tax += record.Tax
		switch record.Status {
		case data.PayrollPaid:
			totals.PaidCount++
		case data.PayrollPending:
			totals.PendingCount++
		}
	}
	return totals
}

// DepartmentDistribution reports each department's monthly salary mass and its
// rounded share of the company total.
func DepartmentDistribution() []DepartmentShare {
	var companyMonthly float64
	for _, emp := range data.Employees {
		companyMonthly += emp.Salary / 12
	}

	var shares []DepartmentShare
	for _, dept := range data.Departments {
		var monthly float64
		for _, emp := range data.Employees {
			if emp.Department == dept {
				monthly += emp.Salary / 12
			}
		}
		if monthly == 0 {
			continue
		}
		shares = append(shares, DepartmentShare{
			Department: dept,
			MonthlyPay: monthly,
			Percent:    int(math.Round(monthly / companyMonthly * 100)),
		})
	}
	return shares
}
