package compensation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billu/internal/domain/ledger"
	"billu/internal/domain/ticket"
	"billu/internal/domain/ticket/valueobjects"
)

func techTicket(t *testing.T, techID uint, category valueobjects.Category, issueType string, service, commission float64) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(ticket.CreateTicketParams{
		TicketNumber:     "123456789",
		OperatorID:       1,
		CustomerID:       1,
		CustomerName:     "Asha Verma",
		CustomerPhone:    "9876543210",
		ProductID:        1,
		ProductName:      "Washing Machine W7",
		Category:         category,
		IssueType:        issueType,
		Priority:         valueobjects.PriorityMedium,
		TechnicianID:     techID,
		TechnicianName:   "Raj",
		ServiceAmount:    service,
		CommissionAmount: commission,
	})
	require.NoError(t, err)
	return tk
}

func centerTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(ticket.CreateTicketParams{
		TicketNumber:      "123456780",
		OperatorID:        1,
		CustomerID:        1,
		CustomerName:      "Asha Verma",
		CustomerPhone:     "9876543210",
		ProductID:         1,
		ProductName:       "TV Q55",
		Category:          valueobjects.CategoryService,
		IssueType:         "Repair",
		Priority:          valueobjects.PriorityLow,
		ServiceCenterID:   3,
		ServiceCenterName: "Karol Bagh Hub",
	})
	require.NoError(t, err)
	return tk
}

func credit(t *testing.T, techID uint, amount float64) *ledger.Transaction {
	t.Helper()
	tx, err := ledger.NewTransaction(1, techID, ledger.TransactionCredit, amount, "")
	require.NoError(t, err)
	return tx
}

func debit(t *testing.T, techID uint, amount float64) *ledger.Transaction {
	t.Helper()
	tx, err := ledger.NewTransaction(1, techID, ledger.TransactionDebit, amount, "")
	require.NoError(t, err)
	return tx
}

func TestTicketContribution(t *testing.T) {
	tests := []struct {
		name       string
		category   valueobjects.Category
		issueType  string
		service    float64
		commission float64
		want       float64
	}{
		{"in store nets service minus commission", valueobjects.CategoryInStore, "Quick Fix", 500, 150, 350},
		{"in store can go negative", valueobjects.CategoryInStore, "Assessment", 100, 250, -150},
		{"third party pays commission", valueobjects.CategoryThirdParty, "Warranty Claim", 900, 200, 200},
		{"zero amounts contribute zero", valueobjects.CategoryInStore, "Quick Fix", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := techTicket(t, 7, tt.category, tt.issueType, tt.service, tt.commission)
			assert.Equal(t, tt.want, TicketContribution(tk))
		})
	}
}

func TestTicketContribution_CenterTicketIsZero(t *testing.T) {
	assert.Equal(t, 0.0, TicketContribution(centerTicket(t)))
}

func TestWalletBalance(t *testing.T) {
	tickets := []*ticket.Ticket{
		techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 500, 150),       // +350
		techTicket(t, 7, valueobjects.CategoryThirdParty, "Warranty Claim", 0, 200), // +200
		techTicket(t, 8, valueobjects.CategoryInStore, "Quick Fix", 999, 0),         // other tech
		centerTicket(t),
	}
	txs := []*ledger.Transaction{
		credit(t, 7, 30),
		debit(t, 7, 200),
		credit(t, 8, 1000), // other tech
	}

	assert.Equal(t, 380.0, WalletBalance(7, tickets, txs))
}

func TestWalletBalance_ZeroTicketsGuard(t *testing.T) {
	// Stale ledger rows for a technician with no assigned tickets must not
	// surface as a balance.
	txs := []*ledger.Transaction{credit(t, 7, 500), debit(t, 7, 100)}

	assert.Equal(t, 0.0, WalletBalance(7, nil, txs))

	tickets := []*ticket.Ticket{techTicket(t, 8, valueobjects.CategoryInStore, "Quick Fix", 100, 0)}
	assert.Equal(t, 0.0, WalletBalance(7, tickets, txs))
}

func TestWalletBalance_CanBeNegative(t *testing.T) {
	tickets := []*ticket.Ticket{techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 100, 250)}
	assert.Equal(t, -150.0, WalletBalance(7, tickets, nil))
}

func resolvedAfter(t *testing.T, tk *ticket.Ticket, d time.Duration) *ticket.Ticket {
	t.Helper()
	require.NoError(t, tk.ChangeStatus(valueobjects.StatusResolved, true))
	require.NoError(t, tk.SetEndDate(tk.CreatedAt().Add(d)))
	return tk
}

func TestTicketScore(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name string
		tk   *ticket.Ticket
		want int
	}{
		{"resolved same day", resolvedAfter(t, techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 0, 0), 6*time.Hour), 100},
		{"resolved exactly one day", resolvedAfter(t, techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 0, 0), 24*time.Hour), 100},
		{"resolved in three days", resolvedAfter(t, techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 0, 0), 3*24*time.Hour), 80},
		{"partial day rounds up", resolvedAfter(t, techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 0, 0), 25*time.Hour), 90},
		{"floors at zero", resolvedAfter(t, techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 0, 0), 40*24*time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TicketScore(tt.tk, now))
		})
	}
}

func TestTicketScore_OpenTicketDecaysAgainstNow(t *testing.T) {
	tk := techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 0, 0)

	// Fresh open ticket scores full marks.
	assert.Equal(t, 100, TicketScore(tk, tk.CreatedAt().Add(time.Hour)))
	// Five started days later it has decayed.
	assert.Equal(t, 60, TicketScore(tk, tk.CreatedAt().Add(5*24*time.Hour)))
}

func TestTicketScore_ResolvedWithoutEndDateUsesNow(t *testing.T) {
	tk := techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 0, 0)
	require.NoError(t, tk.ChangeStatus(valueobjects.StatusResolved, true))

	assert.Equal(t, 80, TicketScore(tk, tk.CreatedAt().Add(3*24*time.Hour)))
}

func TestPerformancePoints(t *testing.T) {
	now := time.Now().UTC()
	tickets := []*ticket.Ticket{
		resolvedAfter(t, techTicket(t, 7, valueobjects.CategoryInStore, "Quick Fix", 0, 0), 12*time.Hour),       // 100
		resolvedAfter(t, techTicket(t, 7, valueobjects.CategoryThirdParty, "Warranty Claim", 0, 0), 72*time.Hour), // 80
		techTicket(t, 8, valueobjects.CategoryInStore, "Quick Fix", 0, 0), // other tech
	}

	report := PerformancePoints(7, tickets, now)

	assert.Equal(t, 180, report.TotalPoints)
	assert.Equal(t, 2, report.TotalTickets)
	assert.Equal(t, 2, report.CompletedTickets)
	assert.Equal(t, 200, report.MaxPossiblePoints)
}

func TestPerformancePoints_NoTickets(t *testing.T) {
	report := PerformancePoints(7, nil, time.Now().UTC())
	assert.Zero(t, report.TotalPoints)
	assert.Zero(t, report.TotalTickets)
	assert.Zero(t, report.CompletedTickets)
	assert.Zero(t, report.MaxPossiblePoints)
}
