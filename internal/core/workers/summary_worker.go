package workers

import (
	"context"
	"log"
	"time"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

type SnapshotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Snapshot, error)
	UpdateSummary(ctx context.Context, id string, current, longest, total int) error
}

type SummaryJob struct {
	SnapshotID string
}

// SummaryWorker computes the streak and total columns for pushed snapshots in
// the background, so a push never pays for decoding its own payload.
type SummaryWorker struct {
	repo SnapshotRepository
	jobs chan SummaryJob

	// now is swappable for tests; the derived numbers depend on what
	// "today" is.
	now func() time.Time
}

func NewSummaryWorker(repo SnapshotRepository) *SummaryWorker {
	return &SummaryWorker{
		repo: repo,
		jobs: make(chan SummaryJob, 100),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (w *SummaryWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Summary Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Summary Worker shutting down...")
				return
			}
		}
	}()
}

func (w *SummaryWorker) Enqueue(snapshotID string) {
	select {
	case w.jobs <- SummaryJob{SnapshotID: snapshotID}:
	default:
		log.Printf("Summary Worker queue full! Dropping job for snapshot %s", snapshotID)
	}
}

func (w *SummaryWorker) processJob(ctx context.Context, job SummaryJob) {
	snapshot, err := w.repo.GetByID(ctx, job.SnapshotID)
	if err != nil {
		log.Printf("Worker Error fetching snapshot %s: %v", job.SnapshotID, err)
		return
	}

	state := snapshot.State()
	if state == nil {
		log.Printf("Worker Error decoding snapshot %s payload", job.SnapshotID)
		return
	}

	today := domain.FormatDate(w.now())
	current := domain.CurrentStreak(state, today)
	longest := domain.LongestStreak(state)
	total := domain.TotalCompleted(state)

	if snapshot.CurrentStreak == current && snapshot.LongestStreak == longest && snapshot.TotalCompleted == total {
		return
	}

	if err := w.repo.UpdateSummary(ctx, job.SnapshotID, current, longest, total); err != nil {
		log.Printf("Worker Failed to update summary for %s: %v", job.SnapshotID, err)
		return
	}

	log.Printf("Summary updated for %s: Current=%d, Longest=%d, Total=%d", job.SnapshotID, current, longest, total)
}
