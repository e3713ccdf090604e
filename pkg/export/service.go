package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/user"
	"github.com/tracklane/tracklane/pkg/payout"
	"github.com/xuri/excelize/v2"
)

// Service generates payout report spreadsheets
type Service struct {
	db          *ent.Client
	storagePath string
}

// NewService creates a new export service
func NewService(db *ent.Client, storagePath string) *Service {
	return &Service{
		db:          db,
		storagePath: storagePath,
	}
}

// GeneratePayoutReport writes an Excel report of all payout records for
// the month and returns the file path.
func (s *Service) GeneratePayoutReport(ctx context.Context, month string) (string, error) {
	if !payout.ValidMonth(month) {
		return "", payout.ErrInvalidMonth
	}

	records, err := s.db.PayoutRecord.Query().
		Where(payoutrecord.MonthEQ(month)).
		Order(ent.Asc(payoutrecord.FieldProducerID)).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("querying payout records: %w", err)
	}

	// Resolve producer names and emails
	ids := make([]int, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ProducerID)
	}
	producers, err := s.db.User.Query().Where(user.IDIn(ids...)).All(ctx)
	if err != nil {
		return "", fmt.Errorf("loading producers: %w", err)
	}
	byID := make(map[int]*ent.User, len(producers))
	for _, p := range producers {
		byID[p.ID] = p
	}

	if err := os.MkdirAll(s.storagePath, 0o755); err != nil {
		return "", fmt.Errorf("creating storage dir: %w", err)
	}

	filename := fmt.Sprintf("payouts-%s-%d.xlsx", month, time.Now().Unix())
	path := filepath.Join(s.storagePath, filename)

	if err := s.writeReport(path, month, records, byID); err != nil {
		return "", err
	}

	return path, nil
}

func (s *Service) writeReport(path, month string, records []*ent.PayoutRecord, producers map[int]*ent.User) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Payouts"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	headers := []string{
		"Payout ID", "Producer ID", "Producer", "Email", "Month", "Amount",
		"Status", "Wallet", "Transaction ID", "Retries", "Paid At", "Last Error",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var total, paid float64
	for rowIdx, rec := range records {
		row := rowIdx + 2

		name, email := "", ""
		if p := producers[rec.ProducerID]; p != nil {
			email = p.Email
			name = p.ArtistName
			if name == "" {
				name = p.Name
			}
		}

		txID := ""
		if rec.PaymentTransactionID != nil {
			txID = *rec.PaymentTransactionID
		}
		paidAt := ""
		if rec.PaidAt != nil {
			paidAt = rec.PaidAt.Format(time.RFC3339)
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), rec.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.ProducerID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), email)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), rec.Month)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), rec.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), string(rec.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), rec.WalletAddress)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), txID)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), rec.RetryCount)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), paidAt)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), rec.LastError)

		total += rec.Amount
		if rec.Status == payoutrecord.StatusPaid {
			paid += rec.Amount
		}
	}

	// Totals row
	footer := len(records) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", footer), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", footer), total)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", footer+1), "Paid")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", footer+1), paid)

	for i := 0; i < len(headers); i++ {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}
