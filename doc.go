// Package qmap maps quantum circuits onto hardware whose two-qubit gates only
// run between physically coupled qubits.
//
// 🚀 What is qmap?
//
//	A qubit router built around SABRE, plus everything it needs:
//		• Devices: coupling graphs with hop and calibration-weighted distances
//		• Builders: line, ring, grid, heavy-hex, star, complete topologies
//		• Circuits: an OpenQASM 2 subset reader and writer
//		• Routing: SABRE and the calibration-aware MQSABRE variant
//		• Checking: output self-check and a state-vector equivalence test
//
// ✨ Why qmap?
//
//   - Deterministic – same device, circuit and options, same output
//   - Observable – zap logs, Prometheus collectors, OpenTelemetry spans
//   - Concurrent – parallel candidate scoring and batch routing
//
// Packages:
//
//	matrix/   - dense float64 matrices and Floyd–Warshall
//	bfs/      - breadth-first search over integer-vertex graphs
//	coupling/ - device coupling graph, cost models, JSON device codec
//	builder/  - topology constructors with calibration sampling
//	circuit/  - operations, gates, OpenQASM 2 I/O
//	dag/      - qubit-wise dependency DAG and its reverse
//	mapping/  - logical↔physical bijection
//	sabre/    - routers, scorers, refiner, batch, metrics
//	sim/      - state-vector simulator and routing equivalence
//	cmd/qmap  - command-line router
//
// Quick example (line 0─1─2─3, gate on 0 and 3):
//
//	g, _ := builder.Build(nil, nil, builder.Line(4))
//	r, _ := sabre.New(g)
//	res, _ := r.Route(ctx, circuit.New(4).Gate("cx", nil, 0, 3))
//	_ = res.Check(g) // every two-qubit op sits on a coupler
package qmap
