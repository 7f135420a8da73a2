package blockchain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blocksProcessedCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blockchain_blocks_processed_total",
		Help: "Count of blocks that completed on_block successfully.",
	})

	blocksRejectedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blockchain_blocks_rejected_total",
		Help: "Count of blocks rejected by on_block, labeled by reason.",
	}, []string{"reason"})

	dataAvailabilityRejectedCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blockchain_data_availability_rejected_total",
		Help: "Count of blocks rejected due to blob data-availability failures.",
	})

	justifiedCheckpointEpoch = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "blockchain_justified_checkpoint_epoch",
		Help: "Epoch of the current live justified checkpoint.",
	})

	finalizedCheckpointEpoch = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "blockchain_finalized_checkpoint_epoch",
		Help: "Epoch of the current finalized checkpoint.",
	})

	proposerBoostRootChurn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blockchain_proposer_boost_root_churn_total",
		Help: "Count of times the proposer boost root changed.",
	})
)
