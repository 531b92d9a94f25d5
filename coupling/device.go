// SPDX-License-Identifier: MIT
// Package: qmap/coupling
//
// device.go - JSON device description codec.
//
// Format:
//
//	{
//	  "name": "heavyhex-27",
//	  "num_qubits": 27,
//	  "couplers": [
//	    {"q0": 0, "q1": 1, "error": 0.0071, "duration": 320},
//	    ...
//	  ]
//	}
//
// "error" and "duration" are optional per coupler. Unknown keys are skipped.

package coupling

import (
	"fmt"

	"github.com/go-faster/jx"
)

// Device is a coupler list with optional calibration, as exchanged on disk.
type Device struct {
	Name      string
	NumQubits int
	Couplers  []Edge
}

// Graph validates the description and builds its coupling graph.
func (d *Device) Graph(opts ...Option) (*Graph, error) {
	g, err := New(d.NumQubits, d.Couplers, opts...)
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", d.Name, err)
	}
	return g, nil
}

// HasCalibration reports whether any coupler carries calibration data.
func (d *Device) HasCalibration() bool {
	for _, e := range d.Couplers {
		if e.ErrorRate != 0 || e.Duration != 0 {
			return true
		}
	}
	return false
}

// DecodeDevice parses a JSON device description.
func DecodeDevice(data []byte) (*Device, error) {
	dev := &Device{}
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "name":
			s, err := d.Str()
			dev.Name = s
			return err
		case "num_qubits":
			n, err := d.Int()
			dev.NumQubits = n
			return err
		case "couplers":
			return d.Arr(func(d *jx.Decoder) error {
				e, err := decodeCoupler(d)
				if err != nil {
					return err
				}
				dev.Couplers = append(dev.Couplers, e)
				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDevice, err)
	}
	if dev.NumQubits < 1 {
		return nil, fmt.Errorf("%w: num_qubits missing or < 1", ErrInvalidDevice)
	}
	return dev, nil
}

func decodeCoupler(d *jx.Decoder) (Edge, error) {
	var (
		e            Edge
		seen0, seen1 bool
	)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "q0":
			e.U, err = d.Int()
			seen0 = true
		case "q1":
			e.V, err = d.Int()
			seen1 = true
		case "error":
			e.ErrorRate, err = d.Float64()
		case "duration":
			e.Duration, err = d.Float64()
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return Edge{}, err
	}
	if !seen0 || !seen1 {
		return Edge{}, fmt.Errorf("coupler missing q0/q1")
	}
	return e, nil
}

// Encode renders the device as compact JSON. Calibration fields are
// omitted for couplers that carry none.
func (d *Device) Encode() []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("name")
	e.Str(d.Name)
	e.FieldStart("num_qubits")
	e.Int(d.NumQubits)
	e.FieldStart("couplers")
	e.ArrStart()
	for _, c := range d.Couplers {
		e.ObjStart()
		e.FieldStart("q0")
		e.Int(c.U)
		e.FieldStart("q1")
		e.Int(c.V)
		if c.ErrorRate != 0 {
			e.FieldStart("error")
			e.Float64(c.ErrorRate)
		}
		if c.Duration != 0 {
			e.FieldStart("duration")
			e.Float64(c.Duration)
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
	return e.Bytes()
}
