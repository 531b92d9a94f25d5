// SPDX-License-Identifier: MIT

// Package sabre maps logical circuits onto a device's coupling graph by
// inserting SWAPs, using the SABRE look-ahead heuristic and its
// calibration-aware MQSABRE variant.
//
// What:
//
//   - New(g, opts...) builds a hop-distance router; NewMQ(g, opts...) builds one
//     that scores with calibrated distances and the cost of each SWAP's coupler.
//   - Route(ctx, c) returns a Result whose two-qubit instructions all act on
//     couplers, with every source operation exactly once and in dependency order.
//   - RouteBatch routes independent circuits concurrently.
//
// How:
//
//	loop:
//	  drain front layer (1q always, 2q when adjacent)
//	  front empty            → done
//	  stalled ≥ StallLimit   → release valve (shortest-path walk)
//	  else                   → score neighbour SWAPs of front operands,
//	                           apply the minimum, equal scores ordered
//	                           by TieBreak on decay weights
//
// The start mapping is refined by Rounds forward/backward passes over the DAG
// and its reverse unless WithInitialMapping fixes it.
//
// Determinism:
//
// For a fixed device, circuit and options the output is identical across
// runs, including with WithWorkers(k > 1): candidates are scored in parallel
// into fixed slots but chosen sequentially in lexicographic order.
//
// Complexity per iteration: O(|F|·deg) candidates, each scored in
// O(|F| + LookAhead).
//
// Observability: zap logger (WithLogger), Prometheus collectors (NewMetrics,
// WithMetrics), one OpenTelemetry span per Route call.
package sabre
