package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrx/internal/domain/data"
)

// Seed upserts the bundled dataset table by table in dependency order. A
// failing table is logged and skipped; later tables still run, so a partial
// seed is possible and the caller should read the logs.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	seedEmployees(ctx, pool, logger)
	seedProjects(ctx, pool, logger)
	seedProjectMembers(ctx, pool, logger)
	seedLeaveRequests(ctx, pool, logger)
	seedLeaveBalances(ctx, pool, logger)
	seedPayrollRecords(ctx, pool, logger)
	seedPerformanceRecords(ctx, pool, logger)
	seedGoals(ctx, pool, logger)
}

func seedEmployees(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	for _, emp := range data.Employees {
		_, err := pool.Exec(ctx, `
			INSERT INTO employees (id, name, email, phone, role, department, job_title, manager_id, start_date, salary, avatar, status, skills, bio)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9::date, $10, $11, $12, $13, $14)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, email = EXCLUDED.email, phone = EXCLUDED.phone,
				role = EXCLUDED.role, department = EXCLUDED.department, job_title = EXCLUDED.job_title,
				manager_id = EXCLUDED.manager_id, start_date = EXCLUDED.start_date, salary = EXCLUDED.salary,
				avatar = EXCLUDED.avatar, status = EXCLUDED.status, skills = EXCLUDED.skills, bio = EXCLUDED.bio`,
			emp.ID, emp.Name, emp.Email, emp.Phone, string(emp.Role), string(emp.Department), emp.JobTitle,
			emp.ManagerID, emp.StartDate, emp.Salary, emp.Avatar, string(emp.Status), emp.Skills, emp.Bio)
		if err != nil {
			logger.Error("seed employees failed", "id", emp.ID, "error", err)
			return
		}
	}
	logger.Info("seeded employees", "count", len(data.Employees))
}

func seedProjects(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	for _, project := range data.Projects {
		_, err := pool.Exec(ctx, `
			INSERT INTO projects (id, name, client, description, status, progress, start_date, end_date, budget)
			VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8::date, $9)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, client = EXCLUDED.client, description = EXCLUDED.description,
				status = EXCLUDED.status, progress = EXCLUDED.progress, start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date, budget = EXCLUDED.budget`,
			project.ID, project.Name, project.Client, project.Description, string(project.Status),
			project.Progress, project.StartDate, project.EndDate, project.Budget)
		if err != nil {
			logger.Error("seed projects failed", "id", project.ID, "error", err)
			return
		}
	}
	logger.Info("seeded projects", "count", len(data.Projects))
}

func seedProjectMembers(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	count := 0
	for _, project := range data.Projects {
		for _, memberID := range project.TeamIDs {
			_, err := pool.Exec(ctx, `
				INSERT INTO project_members (project_id, employee_id)
				VALUES ($1, $2)
				ON CONFLICT (project_id, employee_id) DO NOTHING`,
				project.ID, memberID)
			if err != nil {
				logger.Error("seed project members failed", "projectId", project.ID, "employeeId", memberID, "error", err)
				return
			}
			count++
		}
	}
	logger.Info("seeded project members", "count", count)
}

func seedLeaveRequests(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	for _, req := range data.LeaveRequests {
		_, err := pool.Exec(ctx, `
			INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, days, reason, status, approver_id, applied_date)
			VALUES ($1, $2, $3, $4::date, $5::date, $6, $7, $8, NULLIF($9, ''), $10::date)
			ON CONFLICT (id) DO UPDATE SET
				employee_id = EXCLUDED.employee_id, type = EXCLUDED.type, start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date, days = EXCLUDED.days, reason = EXCLUDED.reason,
				status = EXCLUDED.status, approver_id = EXCLUDED.approver_id, applied_date = EXCLUDED.applied_date`,
			req.ID, req.EmployeeID, string(req.Type), req.StartDate, req.EndDate, req.Days,
			req.Reason, string(req.Status), req.ApproverID, req.AppliedDate)
		if err != nil {
			logger.Error("seed leave requests failed", "id", req.ID, "error", err)
			return
		}
	}
	logger.Info("seeded leave requests", "count", len(data.LeaveRequests))
}

func seedLeaveBalances(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	for _, balance := range data.LeaveBalances {
		_, err := pool.Exec(ctx, `
			INSERT INTO leave_balances (employee_id, annual, sick, maternity, paternity, unpaid, compassionate)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (employee_id) DO UPDATE SET
				annual = EXCLUDED.annual, sick = EXCLUDED.sick, maternity = EXCLUDED.maternity,
				paternity = EXCLUDED.paternity, unpaid = EXCLUDED.unpaid, compassionate = EXCLUDED.compassionate`,
			balance.EmployeeID, balance.Annual, balance.Sick, balance.Maternity,
			balance.Paternity, balance.Unpaid, balance.Compassionate)
		if err != nil {
			logger.Error("seed leave balances failed", "employeeId", balance.EmployeeID, "error", err)
			return
		}
	}
	logger.Info("seeded leave balances", "count", len(data.LeaveBalances))
}

func seedPayrollRecords(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	for _, record := range data.PayrollRecords {
		_, err := pool.Exec(ctx, `
			INSERT INTO payroll_records (id, employee_id, month, year, basic_salary, allowances, deductions, tax, net_pay, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				employee_id = EXCLUDED.employee_id, month = EXCLUDED.month, year = EXCLUDED.year,
				basic_salary = EXCLUDED.basic_salary, allowances = EXCLUDED.allowances,
				deductions = EXCLUDED.deductions, tax = EXCLUDED.tax, net_pay = EXCLUDED.net_pay,
				status = EXCLUDED.status`,
			record.ID, record.EmployeeID, record.Month, record.Year, record.BasicSalary,
			record.Allowances, record.Deductions, record.Tax, record.NetPay, string(record.Status))
		if err != nil {
			logger.Error("seed payroll records failed", "id", record.ID, "error", err)
			return
		}
	}
	logger.Info("seeded payroll records", "count", len(data.PayrollRecords))
}

func seedPerformanceRecords(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	for _, record := range data.PerformanceRecords {
		_, err := pool.Exec(ctx, `
			INSERT INTO performance_records (id, employee_id, reviewer_id, period, kpi_score, rating, feedback, review_date)
			VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8::date)
			ON CONFLICT (id) DO UPDATE SET
				employee_id = EXCLUDED.employee_id, reviewer_id = EXCLUDED.reviewer_id,
				period = EXCLUDED.period, kpi_score = EXCLUDED.kpi_score, rating = EXCLUDED.rating,
				feedback = EXCLUDED.feedback, review_date = EXCLUDED.review_date`,
			record.ID, record.EmployeeID, record.ReviewerID, record.Period,
			record.KPIScore, string(record.Rating), record.Feedback, record.ReviewDate)
		if err != nil {
			logger.Error("seed performance records failed", "id", record.ID, "error", err)
			return
		}
	}
	logger.Info("seeded performance records", "count", len(data.PerformanceRecords))
}

func seedGoals(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	count := 0
	for _, record := range data.PerformanceRecords {
		for _, goal := range record.Goals {
			_, err := pool.Exec(ctx, `
				INSERT INTO goals (id, performance_record_id, title, description, progress, due_date, status)
				VALUES ($1, $2, $3, $4, $5, $6::date, $7)
				ON CONFLICT (id) DO UPDATE SET
					performance_record_id = EXCLUDED.performance_record_id, title = EXCLUDED.title,
					description = EXCLUDED.description, progress = EXCLUDED.progress,
					due_date = EXCLUDED.due_date, status = EXCLUDED.status`,
				goal.ID, record.ID, goal.Title, goal.Description, goal.Progress, goal.DueDate, string(goal.Status))
			if err != nil {
				logger.Error("seed goals failed", "id", goal.ID, "error", err)
				return
			}
			count++
		}
	}
	logger.Info("seeded goals", "count", count)
}
