package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galton/internal/sim"
)

var _ = Describe("Ensemble", func() {
	var cfg sim.Config

	BeforeEach(func() {
		cfg = sim.DefaultConfig()
		cfg.Seed = 7
		cfg.Board.Rates.SpawnProbability = 1
	})

	It("aggregates every run", func() {
		s, err := sim.NewEnsemble(cfg, 4).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Runs).To(HaveLen(4))
		Expect(s.Bins).To(HaveLen(11))
		Expect(sum(s.Bins)).To(Equal(400))

		seeds := map[int64]bool{}
		for _, r := range s.Runs {
			seeds[r.Seed] = true
		}
		Expect(seeds).To(HaveLen(4))
	})

	It("is reproducible from the base seed", func() {
		a, err := sim.NewEnsemble(cfg, 3).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		b, err := sim.NewEnsemble(cfg, 3).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Bins).To(Equal(b.Bins))
	})

	It("piles balls up around the middle like the binomial overlay", func() {
		s, err := sim.NewEnsemble(cfg, 20).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())

		n := sum(s.Bins)
		Expect(n).To(Equal(2000))

		mean, central := 0.0, 0
		for i, c := range s.Bins {
			mean += float64(i * c)
			if i >= 3 && i <= 7 {
				central += c
			}
		}
		mean /= float64(n)

		// Proximity collisions make the walk coarser than fair coin flips,
		// so only the shape is checked, not a strict fit.
		Expect(mean).To(BeNumerically("~", 4.75, 0.75))
		Expect(float64(central) / float64(n)).To(BeNumerically(">", 0.8))
		Expect(s.Distance).To(BeNumerically("<", 0.25))
	})

	It("surfaces configuration errors", func() {
		cfg.MaxTicks = 0
		_, err := sim.NewEnsemble(cfg, 2).Run(context.Background())
		Expect(err).To(MatchError(sim.ErrInvalidConfig))
	})

	It("surfaces tick budget errors from any run", func() {
		cfg.MaxTicks = 5
		_, err := sim.NewEnsemble(cfg, 2).Run(context.Background())
		Expect(err).To(MatchError(sim.ErrTickLimit))
	})
})
