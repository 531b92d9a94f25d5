// SPDX-License-Identifier: MIT

// Package coupling models the connectivity of a quantum device: physical
// qubits 0..N-1 joined by undirected couplers on which two-qubit gates may act.
//
// A Graph is validated and fully precomputed by New:
//
//   - sorted neighbor lists and a canonical, sorted edge list;
//   - an all-pairs hop-distance table (one BFS per qubit);
//   - an all-pairs weighted distance table (Floyd–Warshall over per-edge
//     costs) when a calibrated CostModel is selected;
//   - shortest hop paths for every ordered pair.
//
// After construction the Graph never changes and is safe for concurrent
// readers without synchronization.
//
// Edge cost
//
//	cost(e) = Hop·1 + Error·(−ln(1−ε)) + Duration·d
//
// where ε is the coupler's two-qubit gate error rate and d its gate duration.
// −ln(1−ε) turns fidelities into additive path costs, so the weighted shortest
// path is the most reliable chain of couplers. The default model is pure hop
// count, in which case Distance equals HopDistance.
//
// Errors
//
// Every construction failure wraps ErrInvalidTopology: n < 1, self-loops,
// endpoints outside [0,N), duplicate couplers, negative or NaN calibration,
// ε ≥ 1, and disconnected devices.
//
// Device descriptions are exchanged as JSON (see Device, DecodeDevice).
package coupling
