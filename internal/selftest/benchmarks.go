package selftest

import (
	"verity/pkg/bench"
	"verity/pkg/match"
	"verity/pkg/unit"
)

func benchmarks() []bench.Benchmark {
	return []bench.Benchmark{
		{Name: "float32 compare", Task: func() { countMatches[float32](1_000) }},
		{Name: "float64 compare", Task: func() { countMatches[float64](1_000) }},
		{Name: "extended compare", Task: func() { countExtendedMatches(1_000) }},
		{Name: "is even", Task: func() {
			m := match.IsEven[int]()
			for i := 0; i < 1_000; i++ {
				m.Match(i)
			}
		}},
		{Name: "self run", Task: func() {
			reg := unit.NewRegistry()
			Register(reg)
			unit.NewRunner(reg).Run()
		}},
	}
}
