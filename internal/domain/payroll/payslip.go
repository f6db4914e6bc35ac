package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hrx/internal/domain/data"
)

// RenderPayslipPDF produces the downloadable payslip for a record. The layout
// mirrors the on-screen payslip: earnings, deductions, net pay.
func RenderPayslipPDF(record data.PayrollRecord, emp data.Employee) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", emp.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("%s - %s", emp.JobTitle, emp.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", record.Month, record.Year))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Reference: %s", record.ID))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Basic Salary: %s", data.FormatCurrency(record.BasicSalary)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %s", data.FormatCurrency(record.Allowances)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Provident Fund: %s", data.FormatCurrency(record.Deductions)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Income Tax (TDS): %s", data.FormatCurrency(record.Tax)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Net Pay: %s", data.FormatCurrency(record.NetPay)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
