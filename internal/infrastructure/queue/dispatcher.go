package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

const defaultWorkers = 4

// Dispatcher fans a batch of sync tasks out to a fixed set of workers,
// sharding by property so all work for one property runs on the same
// worker in submission order.
type Dispatcher struct {
	numWorkers int
	syncer     ports.PropertySyncer
	log        zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, syncer ports.PropertySyncer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{numWorkers: numWorkers, syncer: syncer, log: log}
}

// RunBatch processes all tasks and blocks until the batch is done.
// Outcomes are aggregated into a single report; a failed task is logged
// and counted out of the report's Properties total rather than aborting
// the rest of the batch.
func (d *Dispatcher) RunBatch(ctx context.Context, tasks []ports.SyncTask) ports.SyncReport {
	shards := make([][]ports.SyncTask, d.numWorkers)
	for _, t := range tasks {
		i := d.shardIndex(t.Property.SmoobuID)
		shards[i] = append(shards[i], t)
	}

	var (
		mu     sync.Mutex
		report ports.SyncReport
		wg     sync.WaitGroup
	)

	for i, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		wg.Add(1)
		go func(workerID int, shard []ports.SyncTask) {
			defer wg.Done()
			for _, task := range shard {
				if ctx.Err() != nil {
					return
				}
				outcome, err := d.syncer.SyncProperty(ctx, task)
				if err != nil {
					d.log.Error().Err(err).
						Int64("property_id", task.Property.ID).
						Int("worker_id", workerID).
						Msg("property sync failed")
					continue
				}
				mu.Lock()
				report.Properties++
				report.Reservations += outcome.Reservations
				report.Cleanings += outcome.Cleanings
				mu.Unlock()
			}
		}(i, shard)
	}

	wg.Wait()
	return report
}

// shardIndex maps a smoobu property id deterministically to a worker index.
func (d *Dispatcher) shardIndex(smoobuID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(smoobuID, 10)))
	return int(h.Sum32()) % d.numWorkers
}
