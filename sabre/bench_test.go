package sabre_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/coupling"
	"github.com/katalvlaran/qmap/sabre"
)

func benchRoute(b *testing.B, con builder.Constructor, mq bool, opts ...sabre.Option) {
	var gopts []coupling.Option
	if mq {
		gopts = append(gopts, coupling.WithCalibration())
	}
	g, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformError(0.001, 0.03)}, gopts, con)
	if err != nil {
		b.Fatal(err)
	}
	newRouter := sabre.New
	if mq {
		newRouter = sabre.NewMQ
	}
	r, err := newRouter(g, opts...)
	if err != nil {
		b.Fatal(err)
	}
	c := randomCircuit(rand.New(rand.NewSource(1)), g.Order(), 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Route(context.Background(), c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRoute_Grid5x5(b *testing.B) { benchRoute(b, builder.Grid(5, 5), false) }
func BenchmarkRoute_HeavyHex2x3(b *testing.B) { benchRoute(b, builder.HeavyHex(2, 3), false) }
func BenchmarkRouteMQ_HeavyHex2x3(b *testing.B) { benchRoute(b, builder.HeavyHex(2, 3), true) }
func BenchmarkRoute_Grid5x5Workers4(b *testing.B) {
	benchRoute(b, builder.Grid(5, 5), false, sabre.WithWorkers(4))
}
