// Package montyhall implements the three-door Monty Hall game and its
// batch simulation.
//
// A trial realizes one game: a random prize assignment, a random contestant
// pick, and a host reveal that always exposes a goat. Both contestant
// strategies (stay and switch) are then evaluated against that single
// realized game, so a trial always produces exactly two outcome records that
// share the same assignment, pick, and opened door. Batches fold many
// independent trials into per-strategy win proportions.
package montyhall
