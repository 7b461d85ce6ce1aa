package engine

import "github.com/skillprotocol/skill/metrics"

var (
	metricDeposits        = metrics.LazyLoadCounter("board_deposit_count")
	metricRoundsFinalized = metrics.LazyLoadCounter("board_round_finalized_count")
	metricCheckpoints     = metrics.LazyLoadCounterVec("board_checkpoint_count", []string{"outcome"})
	metricEmissionMinted  = metrics.LazyLoadCounter("board_emission_minted")
	metricRoundsPruned    = metrics.LazyLoadCounter("board_round_pruned_count")
)
