// Package builder produces deterministic, string-labeled fixture graphs for
// the search, shortest-path and spanning-tree packages.
//
// The package offers:
//
//   - BuildGraph[W](bopts, cons...): create a *core.Graph[string, W] and run
//     constructors in order. MustBuild panics instead of returning an error.
//   - Topologies: Cycle, Path, Star, Wheel, Complete, Grid.
//   - Stochastic topologies: RandomSparse (G(n,p)) and RandomConnected
//     (random spanning tree plus G(n,p) extras); both need WithSeed/WithRand.
//   - Label schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), PrefixIDFn("v") ("v0","v1",…),
//     GridIDFn ("r,c", Grid's default).
//   - Weight policies (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntRangeWeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on nil arguments; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
//   - Weights are produced as float64 and converted to W; integer weight
//     types truncate, so pair them with IntRangeWeightFn or ConstantWeightFn.
//
// Example:
//
//	g, err := builder.BuildGraph[int](
//	    []builder.BuilderOption{builder.WithSeed(1), builder.WithIntRangeWeight(1, 9)},
//	    builder.Complete(5),
//	)
package builder
