// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodBuildGraph        = "BuildGraph"
	methodEmptyBipartite    = "EmptyBipartite"
	methodCompleteBipartite = "CompleteBipartite"
	methodRandomBipartite   = "RandomBipartite"
)

//-----------------------------------------------------------------------------
// Bounds
//-----------------------------------------------------------------------------

// MinPartition is the smallest allowed partition size. Zero is accepted:
// a degenerate side produces a vertex set without edges.
const MinPartition = 0

// MinProbability is the lower bound for the edge probability p, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the edge probability p, inclusive.
const MaxProbability = 1.0
