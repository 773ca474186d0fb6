package trading

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-tradegen/internal/datagen"
	"github.com/pgEdge/pgedge-tradegen/internal/datagen/payload"
)

// automatedJobs is the fixed number of scheduled jobs.
const automatedJobs = 20

var (
	auditRiskLevels = []string{"LOW", "MEDIUM", "HIGH"}
	environments    = []string{"development", "staging", "production"}
)

func (g *Generator) generateAuditLogs(ctx context.Context) (int, error) {
	if err := need("users", len(g.users)); err != nil {
		return 0, err
	}
	f := g.faker
	logs := make([]AuditLog, 0, g.records)

	for range g.records {
		user := datagen.Choose(f, g.users)
		op := datagen.Choose(f, auditOperations)
		table := datagen.Choose(f, auditTables)
		ts := f.Timestamp()

		l := AuditLog{
			AuditID:   f.UUID(),
			TableName: table,
			Operation: op,
			UserID:    user.UserID,
			Timestamp: ts,
		}
		switch op {
		case "INSERT":
			l.NewValues = payload.Of(payload.Map{
				"id":         payload.String(f.UUID().String()),
				"created_at": payload.At(ts),
			})
		case "UPDATE":
			l.OldValues = payload.Of(payload.Map{
				"value":      payload.String("old_value"),
				"updated_at": payload.At(ts.Add(-day)),
			})
			l.NewValues = payload.Of(payload.Map{
				"value":      payload.String("new_value"),
				"updated_at": payload.At(ts),
			})
			l.ChangedFields = []string{"value", "updated_at"}
		case "DELETE":
			l.OldValues = payload.Of(payload.Map{
				"id":         payload.String(f.UUID().String()),
				"deleted_at": payload.Null{},
			})
			l.NewValues = payload.Of(payload.Map{
				"id":         payload.String(f.UUID().String()),
				"deleted_at": payload.At(ts),
			})
		}
		l.RecordID = f.UUID()
		l.IPAddress = f.IPv4()
		l.UserAgent = "Mozilla/5.0 " + f.UserAgent()
		l.SessionID = f.UUID().String()
		l.ApplicationName = "Trading Platform"
		l.BusinessContext = g.maybeText(0.3, 2000, func() string { return f.Sentence(10) })
		l.RiskLevel = g.maybeChoice(0.5, auditRiskLevels)
		if f.Chance(0.3) {
			l.ComplianceFlags = payload.Of(payload.Map{"regulatory_required": payload.Bool(f.Bool())})
		}
		l.CreatedAt = ts

		logs = append(logs, l)
	}

	if err := save(ctx, g, "audit_log", logs); err != nil {
		return 0, err
	}
	g.auditLogs = logs
	return len(logs), nil
}

// generateHealthMetrics samples metrics over the last thirty days of the
// window. Severity follows fixed thresholds for CPU, memory and latency.
func (g *Generator) generateHealthMetrics(ctx context.Context) (int, error) {
	f := g.faker
	now := f.Now()
	n := 3 * g.records

	metrics := make([]HealthMetric, 0, n)
	for range n {
		kind := datagen.Choose(f, metricKinds)
		component := datagen.Choose(f, metricComponents)
		ts := f.TimestampIn(now.Add(-30*day), now)
		value := g.metricValue(kind.unit)
		severity := g.severity(kind.name, value)

		m := HealthMetric{
			MetricID:    f.UUID(),
			MetricName:  kind.name,
			MetricValue: value,
			MetricUnit:  kind.unit,
			Timestamp:   ts,
			Component:   component,
		}
		m.Severity = datagen.Maybe(f, 0.7, func() string { return severity })
		if f.Chance(0.5) {
			m.MetricMetadata = payload.Of(payload.Map{
				"source":      payload.String("monitoring"),
				"environment": payload.String(datagen.Choose(f, environments)),
			})
		}
		m.ExpiresAt = datagen.Maybe(f, 0.3, func() time.Time { return g.afterDays(ts, 30, 90) })

		metrics = append(metrics, m)
	}

	if err := save(ctx, g, "system_health_metrics", metrics); err != nil {
		return 0, err
	}
	g.metrics = metrics
	return len(metrics), nil
}

func (g *Generator) metricValue(unit string) decimal.Decimal {
	switch unit {
	case "MB":
		return g.faker.Decimal(100, 8192, 2)
	case "COUNT":
		return g.faker.Decimal(0, 1000, 0)
	case "MS":
		return g.faker.Decimal(1, 2000, 2)
	default:
		return g.faker.Decimal(0, 100, 2)
	}
}

// severity grades a metric value. Metrics without thresholds get a random
// grade.
func (g *Generator) severity(name string, value decimal.Decimal) string {
	var warning, critical int64
	switch name {
	case "CPU_USAGE":
		warning, critical = 70, 90
	case "MEMORY_USAGE":
		warning, critical = 5000, 7000
	case "API_LATENCY":
		warning, critical = 200, 500
	default:
		return datagen.Choose(g.faker, severities)
	}
	switch {
	case value.GreaterThan(decimal.NewFromInt(critical)):
		return "CRITICAL"
	case value.GreaterThan(decimal.NewFromInt(warning)):
		return "WARNING"
	default:
		return "NORMAL"
	}
}

// generateAutomatedJobs writes the scheduled job catalog. Only enabled
// jobs have run history.
func (g *Generator) generateAutomatedJobs(ctx context.Context) (int, error) {
	f := g.faker
	start, end := f.Window()

	jobs := make([]AutomatedJob, 0, automatedJobs)
	for i := range automatedJobs {
		fn := datagen.Choose(f, jobFunctions)
		created := f.TimestampIn(start, end.Add(-30*day))
		updated := g.afterDays(created, 1, 30)

		j := AutomatedJob{
			JobID:              f.UUID(),
			JobName:            fmt.Sprintf("%s-job-%d", strings.ReplaceAll(strings.ToLower(fn), "_", "-"), i+1),
			JobDescription:     g.maybeText(0.7, 2000, f.Paragraph),
			JobFunction:        fn,
			ScheduleExpression: datagen.Choose(f, jobSchedules),
			IsEnabled:          f.Chance(0.8),
			CreatedAt:          created,
			UpdatedAt:          updated,
		}
		if j.IsEnabled {
			j.LastExecution = datagen.Ptr(updated)
			j.LastStatus = datagen.Ptr(datagen.Choose(f, jobStatuses))
			j.ExecutionCount = f.Int64(0, 1000)
		}
		if j.LastStatus != nil && *j.LastStatus == "FAILED" {
			j.LastErrorMessage = g.maybeText(0.5, 2000, func() string { return f.Sentence(8) })
		}
		if j.ExecutionCount > 0 {
			j.AvgExecutionTimeMS = datagen.Ptr(f.Decimal(100, 10000, 2))
		}

		jobs = append(jobs, j)
	}

	if err := save(ctx, g, "automated_jobs", jobs); err != nil {
		return 0, err
	}
	g.jobs = jobs
	return len(jobs), nil
}
