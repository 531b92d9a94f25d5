// Package builder provides reusable “functional‐options”‐style constructors
// for quantum device layouts. Every constructor emits couplers over integer
// qubit indices into a shared Layout, and BuildDevice turns the result into a
// coupling.Device ready for coupling.New.
//
// The package offers the following key components:
//
//   - Topology constructors (Constructor implementations):
//     – Line(n):           chain 0-1-…-(n-1).
//     – Ring(n):           Line plus the closing coupler (n-1,0).
//     – Grid(r,c):         4-neighborhood square lattice, row-major indices.
//     – HeavyHex(r,c):     honeycomb of r×c hexagons with every coupler
//     subdivided by an extra qubit (the IBM heavy-hex family).
//     – Star(n):           hub 0 coupled to 1..n-1.
//     – Complete(n):       all-to-all couplers (trapped-ion style).
//     – Couplers(pairs):   explicit extra couplers.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, calibration functions, device name.
//   - Calibration distributions (CalibrationFn implementations):
//     – ConstantErrorFn, UniformErrorFn: per-coupler two-qubit error rate.
//     – ConstantDurationFn, UniformDurationFn: per-coupler gate duration.
//
// Guarantees:
//
//   - Idempotent composition: constructors share absolute qubit indices, and
//     re-emitting an existing coupler is a no-op, so Line(5) followed by Ring(5)
//     yields exactly the 5-ring.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping ErrTooFewQubits / ErrConstructFailed /
//     ErrOptionViolation for invalid build parameters.
//   - Determinism: identical constructors, options and seed ⇒ identical devices
//     (including sampled calibration).
package builder
