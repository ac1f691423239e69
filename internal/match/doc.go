// Package match scores candidate overlaps between adjacent files and
// selects the best one.
//
// Key pieces:
//   - Scored: a search candidate plus the bytewise comparison of its
//     hypothesized overlap region, with a quality ratio in [0,1]
//   - CountDiffering: block-wise bytewise comparison of two streams
//   - Resolver: drives search and scoring across successive candidate
//     positions, with an early-stop quality threshold and an optional
//     aggressive mode that keeps looking past a poor first match
package match
