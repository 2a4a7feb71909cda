// Package strategy synthesizes connectivity graphs from region sizes and
// per-region connection strategies.
//
// A ConnectionStrategy is the capability the assembly loop consumes: given
// a target region's vertex list and a source region's vertex list, produce
// the directed edges wiring them plus the set of target vertices that
// actually received a connection. The reachability core treats strategies
// as black-box edge generators; anything implementing the interface plugs
// in.
//
// Assemble walks the region partition the way the original experiments
// did: region i is wired forward into region i+1, and the last region is
// wired recursively back into region 0 with self-connections permitted
// inside it. The same strategy kind is typically used for every region but
// the picker is free to vary parameters per region.
//
// Two concrete strategies are provided: AllToAll (dense wiring, mostly for
// fixtures) and FixedDegree (seeded uniform sampling of a fixed out-degree
// per source neuron). Both are deterministic for a fixed seed.
package strategy
