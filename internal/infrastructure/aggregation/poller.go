package aggregation

import (
	"context"
	"sort"
	"time"

	"billu/internal/application/admin/dto"
	"billu/internal/domain/compensation"
	"billu/internal/domain/ledger"
	"billu/internal/domain/technician"
	"billu/internal/domain/ticket"
	"billu/internal/shared/biztime"
	"billu/internal/shared/goroutine"
	"billu/internal/shared/logger"
)

// SnapshotSink receives computed snapshots.
type SnapshotSink interface {
	Save(ctx context.Context, snapshot *dto.OverviewSnapshot, ttl time.Duration) error
}

// Poller recomputes the cross-operator technician leaderboard on a fixed
// interval and publishes it to the snapshot store. The overview endpoint
// reads the snapshot instead of querying live.
type Poller struct {
	ticketRepo     ticket.Repository
	technicianRepo technician.Repository
	ledgerRepo     ledger.Repository
	sink           SnapshotSink
	interval       time.Duration
	logger         logger.Interface

	stop chan struct{}
	done chan struct{}
}

func NewPoller(
	ticketRepo ticket.Repository,
	technicianRepo technician.Repository,
	ledgerRepo ledger.Repository,
	sink SnapshotSink,
	interval time.Duration,
	logger logger.Interface,
) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		ticketRepo:     ticketRepo,
		technicianRepo: technicianRepo,
		ledgerRepo:     ledgerRepo,
		sink:           sink,
		interval:       interval,
		logger:         logger,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}
}

// Start launches the polling loop. The first refresh runs immediately so
// the overview is available right after boot.
func (p *Poller) Start() {
	goroutine.SafeGo("aggregation-poller", func() {
		defer close(p.done)

		p.refresh()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.refresh()
			case <-p.stop:
				return
			}
		}
	})
}

// Stop signals the loop to exit and waits for it.
func (p *Poller) Stop() {
	close(p.stop)
	<-p.done
	p.logger.Infow("aggregation poller stopped")
}

func (p *Poller) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	tickets, err := p.ticketRepo.FindAll(ctx)
	if err != nil {
		p.logger.Errorw("aggregation refresh failed to load tickets", "error", err)
		return
	}
	technicians, err := p.technicianRepo.FindAll(ctx)
	if err != nil {
		p.logger.Errorw("aggregation refresh failed to load technicians", "error", err)
		return
	}
	transactions, err := p.ledgerRepo.FindAll(ctx)
	if err != nil {
		p.logger.Errorw("aggregation refresh failed to load transactions", "error", err)
		return
	}

	snapshot := buildSnapshot(tickets, technicians, transactions, biztime.NowUTC())

	if err := p.sink.Save(ctx, snapshot, 2*p.interval); err != nil {
		p.logger.Errorw("failed to publish overview snapshot", "error", err)
		return
	}
	p.logger.Debugw("overview snapshot refreshed",
		"tickets", snapshot.TotalTickets,
		"technicians", len(snapshot.Leaderboard))
}

func buildSnapshot(
	tickets []*ticket.Ticket,
	technicians []*technician.Technician,
	transactions []*ledger.Transaction,
	now time.Time,
) *dto.OverviewSnapshot {
	snapshot := &dto.OverviewSnapshot{
		GeneratedAt:  now,
		TotalTickets: len(tickets),
	}
	for _, t := range tickets {
		if !t.Status().IsResolved() {
			snapshot.OpenTickets++
		}
	}

	for _, tech := range technicians {
		report := compensation.PerformancePoints(tech.ID(), tickets, now)
		assigned := compensation.AssignedTickets(tech.ID(), tickets)

		resolved := 0
		for _, t := range assigned {
			if t.Status().IsResolved() {
				resolved++
			}
		}

		snapshot.Leaderboard = append(snapshot.Leaderboard, dto.TechnicianStanding{
			TechnicianID:      tech.ID(),
			TechnicianName:    tech.Name(),
			OperatorID:        tech.OperatorID(),
			AssignedTickets:   len(assigned),
			ResolvedTickets:   resolved,
			TotalPoints:       float64(report.TotalPoints),
			MaxPossiblePoints: float64(report.MaxPossiblePoints),
			WalletBalance:     compensation.WalletBalance(tech.ID(), tickets, transactions),
		})
	}

	sort.SliceStable(snapshot.Leaderboard, func(i, j int) bool {
		return snapshot.Leaderboard[i].TotalPoints > snapshot.Leaderboard[j].TotalPoints
	})

	return snapshot
}
