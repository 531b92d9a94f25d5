// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qmap/circuit"
	"github.com/katalvlaran/qmap/sabre"
)

// Tolerance is the largest amplitude difference Equivalent accepts.
const Tolerance = 1e-9

// EquivalentRouting checks res against its source circuit on one random
// input: the routed program applied to the input embedded via res.Initial
// must equal the source's output embedded via res.Final.
func EquivalentRouting(logical *circuit.Circuit, res *sabre.Result, rng *rand.Rand) error {
	in, err := Random(logical.NumQubits, rng)
	if err != nil {
		return err
	}
	want := in.Clone()
	if err := want.Run(logical); err != nil {
		return fmt.Errorf("logical: %w", err)
	}
	if want, err = want.Embed(res.Final); err != nil {
		return err
	}

	got, err := in.Embed(res.Initial)
	if err != nil {
		return err
	}
	if err := got.Run(res.Circuit()); err != nil {
		return fmt.Errorf("routed: %w", err)
	}
	if d := got.Distance(want); d > Tolerance {
		return fmt.Errorf("%w: max amplitude error %.3g", ErrNotEquivalent, d)
	}
	return nil
}
