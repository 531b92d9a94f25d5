// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/coupling"
)

var errTopology = errors.New("qmap: bad -topology")

// parseTopology turns "line:5", "ring:8", "grid:3x3", "heavyhex:2x3",
// "star:5" or "complete:4" into a constructor.
func parseTopology(spec string) (builder.Constructor, error) {
	kind, arg, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q (want kind:size)", errTopology, spec)
	}
	switch kind {
	case "line", "ring", "star", "complete":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errTopology, spec, err)
		}
		return map[string]func(int) builder.Constructor{
			"line":     builder.Line,
			"ring":     builder.Ring,
			"star":     builder.Star,
			"complete": builder.Complete,
		}[kind](n), nil
	case "grid", "heavyhex":
		rs, cs, ok := strings.Cut(arg, "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q (want RxC)", errTopology, spec)
		}
		r, err1 := strconv.Atoi(rs)
		c, err2 := strconv.Atoi(cs)
		if err := errors.Join(err1, err2); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errTopology, spec, err)
		}
		if kind == "grid" {
			return builder.Grid(r, c), nil
		}
		return builder.HeavyHex(r, c), nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", errTopology, kind)
}

// parseErrorRange reads "0.01" (constant) or "0.001:0.05" (uniform).
func parseErrorRange(s string) (builder.BuilderOption, error) {
	lo, hi, ranged := strings.Cut(s, ":")
	a, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return nil, fmt.Errorf("qmap: bad -error %q: %w", s, err)
	}
	if !ranged {
		if a < 0 || a >= 1 {
			return nil, fmt.Errorf("qmap: bad -error %q: want [0,1)", s)
		}
		return builder.WithConstantError(a), nil
	}
	b, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return nil, fmt.Errorf("qmap: bad -error %q: %w", s, err)
	}
	if a < 0 || b < a || b >= 1 {
		return nil, fmt.Errorf("qmap: bad -error %q: want 0 ≤ lo ≤ hi < 1", s)
	}
	return builder.WithUniformError(a, b), nil
}

// loadDevice reads a JSON device file or builds the -topology spec.
func loadDevice(cfg *config) (*coupling.Device, error) {
	switch {
	case cfg.device != "" && cfg.topology != "":
		return nil, errors.New("qmap: -device and -topology are exclusive")
	case cfg.device != "":
		data, err := os.ReadFile(cfg.device)
		if err != nil {
			return nil, err
		}
		return coupling.DecodeDevice(data)
	case cfg.topology != "":
		con, err := parseTopology(cfg.topology)
		if err != nil {
			return nil, err
		}
		bopts := []builder.BuilderOption{builder.WithSeed(cfg.seed)}
		if cfg.errorRange != "" {
			opt, err := parseErrorRange(cfg.errorRange)
			if err != nil {
				return nil, err
			}
			bopts = append(bopts, opt)
		}
		return builder.BuildDevice(bopts, con)
	}
	return nil, errors.New("qmap: one of -device or -topology is required")
}
