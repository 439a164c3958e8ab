package model

// ReductionMethod names the strategy used to collapse a result set into one
// verdict. Pipeline and ensemble carry distinct labels but reduce with the
// same confidence-weighted arithmetic as parallel.
type ReductionMethod string

const (
	ReduceConfidenceWeighted ReductionMethod = "confidence_weighted_average"
	ReduceMajorityVote       ReductionMethod = "majority_vote"
	ReduceBestOfN            ReductionMethod = "best_of_n"
	ReduceElimination        ReductionMethod = "elimination"
	ReduceLastResult         ReductionMethod = "last_result"
	ReduceChainRefinement    ReductionMethod = "chain_refinement"
	ReduceWeightedCombine    ReductionMethod = "weighted_combination"
)

var reductionByTopology = map[Topology]ReductionMethod{
	TopologyParallel:   ReduceConfidenceWeighted,
	TopologyHivemind:   ReduceMajorityVote,
	TopologySwarm:      ReduceBestOfN,
	TopologyTournament: ReduceElimination,
	TopologySequential: ReduceLastResult,
	TopologyPipeline:   ReduceChainRefinement,
	TopologyEnsemble:   ReduceWeightedCombine,
}

// ReductionMethodFor returns the reduction strategy label for a topology.
// Unmapped topologies default to confidence-weighted averaging.
func ReductionMethodFor(t Topology) ReductionMethod {
	if m, ok := reductionByTopology[t]; ok {
		return m
	}
	return ReduceConfidenceWeighted
}
