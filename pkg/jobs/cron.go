package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tracklane/tracklane/pkg/payout"
	"github.com/tracklane/tracklane/pkg/slack"
)

// systemUser marks runs triggered by the scheduler rather than an admin.
const systemUser = 0

// CronManager manages the monthly payout schedule
type CronManager struct {
	cron   *cron.Cron
	payout *payout.Service
	alerts *slack.Service
	logger *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(payoutService *payout.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:   cron.New(),
		payout: payoutService,
		logger: logger,
	}
}

// SetAlerts sets the Slack channel for run summaries
func (cm *CronManager) SetAlerts(alerts *slack.Service) {
	cm.alerts = alerts
}

// SetupJobs configures the payout pipeline schedule: generation on the
// 1st, disbursement on the 2nd, and a retry sweep on the 5th of each
// month. Generation and disbursement target the previous month.
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// 1st of each month at 2 AM: generate payouts for the previous month
	_, err := cm.cron.AddFunc("0 2 1 * *", func() {
		month := previousMonth(time.Now())
		cm.logger.Printf("🕐 Running monthly payout generation for %s...", month)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		resp, err := cm.payout.Generate(ctx, month, false, systemUser)
		if err != nil {
			cm.logger.Printf("❌ Payout generation for %s failed: %v", month, err)
			return
		}
		if !resp.Success {
			cm.logger.Printf("⚠️  Payout generation for %s skipped: %s", month, resp.Message)
			return
		}

		cm.logger.Printf("✅ Payout generation for %s completed: %d generated, %d skipped",
			month, resp.Summary.PayoutsGenerated, resp.Summary.Skipped)

		if cm.alerts != nil {
			if err := cm.alerts.NotifyPayoutsGenerated(ctx, month,
				resp.Summary.TotalProducers, resp.Summary.PayoutsGenerated, resp.Summary.Skipped); err != nil {
				cm.logger.Printf("⚠️  Slack notification failed: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	// 2nd of each month at 2 AM: disburse the generated payouts
	_, err = cm.cron.AddFunc("0 2 2 * *", func() {
		month := previousMonth(time.Now())
		cm.logger.Printf("🕐 Running monthly payout disbursement for %s...", month)

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Hour)
		defer cancel()

		resp, err := cm.payout.Disburse(ctx, month, false, systemUser)
		if err != nil {
			cm.logger.Printf("❌ Payout disbursement for %s failed: %v", month, err)
			return
		}

		cm.logger.Printf("✅ Payout disbursement for %s completed: %d successful, %d failed, %d skipped",
			month, resp.Summary.Successful, resp.Summary.Failed, resp.Summary.Skipped)

		if cm.alerts != nil {
			if err := cm.alerts.NotifyDisbursementComplete(ctx, month,
				resp.Summary.Total, resp.Summary.Successful, resp.Summary.Failed, resp.Summary.Skipped); err != nil {
				cm.logger.Printf("⚠️  Slack notification failed: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	// 5th of each month at 2 AM: retry payouts that failed disbursement
	_, err = cm.cron.AddFunc("0 2 5 * *", func() {
		cm.logger.Println("🕐 Running payout retry sweep...")

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Hour)
		defer cancel()

		resp, err := cm.payout.Retry(ctx, payout.DefaultMaxRetries, "")
		if err != nil {
			cm.logger.Printf("❌ Payout retry sweep failed: %v", err)
			return
		}
		if resp.Summary.Total == 0 {
			cm.logger.Println("✅ No payouts awaiting retry")
			return
		}

		cm.logger.Printf("✅ Payout retry sweep completed: %d successful, %d failed, %d skipped",
			resp.Summary.Successful, resp.Summary.Failed, resp.Summary.Skipped)

		if cm.alerts != nil {
			if err := cm.alerts.NotifyRetrySweepComplete(ctx,
				resp.Summary.Total, resp.Summary.Successful, resp.Summary.Failed, resp.Summary.Skipped); err != nil {
				cm.logger.Printf("⚠️  Slack notification failed: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

// Start begins executing scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("✅ Cron scheduler started")
}

// Stop halts the scheduler and waits for running jobs
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Println("🛑 Cron scheduler stopped")
}

// previousMonth formats the month before the given time as YYYY-MM.
func previousMonth(now time.Time) string {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -1, 0).Format("2006-01")
}
