// SPDX-License-Identifier: MIT

// Package circuit holds the abstract operation sequence consumed and produced
// by qubit routing, plus an OpenQASM 2.0 subset reader and writer.
//
// An Operation is an ordered operand list of qubit indices and an opaque
// Payload. Routing only reads Qubits; it passes Payload through unmodified, so
// callers may attach any gate representation. Gate is the payload this package
// parses and prints.
//
// Supported OpenQASM statements:
//
//	OPENQASM 2.0;  include "...";          headers, ignored
//	qreg a[n]; qreg b[m];                   flattened in declaration order
//	creg c[k];                              flattened likewise
//	name q[i];  name(p, ...) q[i], q[j];    any gate name, pi expressions
//	name q;                                 register broadcast
//	measure q[i] -> c[j];                   single-qubit operation
//	reset q[i];                             single-qubit operation
//	barrier ...;                            skipped
//
// `if (...)` and `gate` definitions return ErrUnsupportedStatement.
package circuit
