package compensation

import (
	"math"
	"time"

	"billu/internal/domain/ledger"
	"billu/internal/domain/ticket"
	"billu/internal/domain/ticket/valueobjects"
)

// TicketContribution is the amount a single ticket adds to its technician's
// wallet. In Store work nets the service amount against the commission and
// may come out negative; Third Party work pays the commission. Other
// categories carry no financials and contribute nothing.
func TicketContribution(t *ticket.Ticket) float64 {
	d := t.TechDetails()
	if d == nil {
		return 0
	}
	switch t.Category() {
	case valueobjects.CategoryInStore:
		return d.ServiceAmount() - d.CommissionAmount()
	case valueobjects.CategoryThirdParty:
		return d.CommissionAmount()
	}
	return 0
}

// WalletBalance computes a technician's live balance from their assigned
// tickets and manual ledger entries. A technician with zero assigned tickets
// has a balance of exactly 0 no matter what the ledger says; stale
// transactions for an unassigned technician never surface.
func WalletBalance(technicianID uint, tickets []*ticket.Ticket, transactions []*ledger.Transaction) float64 {
	assigned := AssignedTickets(technicianID, tickets)
	if len(assigned) == 0 {
		return 0
	}

	var balance float64
	for _, t := range assigned {
		balance += TicketContribution(t)
	}
	for _, tx := range transactions {
		if tx.TechnicianID() == technicianID {
			balance += tx.SignedAmount()
		}
	}
	return balance
}

// AssignedTickets selects the tickets assigned to the technician by ID.
func AssignedTickets(technicianID uint, tickets []*ticket.Ticket) []*ticket.Ticket {
	var out []*ticket.Ticket
	for _, t := range tickets {
		if d := t.TechDetails(); d != nil && d.TechnicianID() == technicianID {
			out = append(out, t)
		}
	}
	return out
}

// PerformanceReport summarizes a technician's speed-of-resolution score.
type PerformanceReport struct {
	TotalPoints       int
	TotalTickets      int
	CompletedTickets  int
	MaxPossiblePoints int
}

// TicketScore scores one ticket: 100 points when closed within a day, minus
// 10 per additional started day, floored at 0. Open tickets are scored
// against now, so their score keeps decaying until they resolve.
func TicketScore(t *ticket.Ticket, now time.Time) int {
	start := t.CreatedAt()
	end := now
	if t.Status().IsResolved() && t.EndDate() != nil {
		end = *t.EndDate()
	}

	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	days := int(math.Ceil(elapsed.Hours() / 24))
	if days <= 1 {
		return 100
	}
	score := 100 - 10*(days-1)
	if score < 0 {
		return 0
	}
	return score
}

// PerformancePoints computes the technician's current report. It is
// recomputed on every read and never stored.
func PerformancePoints(technicianID uint, tickets []*ticket.Ticket, now time.Time) PerformanceReport {
	assigned := AssignedTickets(technicianID, tickets)

	report := PerformanceReport{
		TotalTickets:      len(assigned),
		MaxPossiblePoints: 100 * len(assigned),
	}
	for _, t := range assigned {
		report.TotalPoints += TicketScore(t, now)
		if t.Status().IsResolved() {
			report.CompletedTickets++
		}
	}
	return report
}
