package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galton/internal/board"
	"github.com/san-kum/galton/internal/sim"
)

func sum(bins []int) int {
	n := 0
	for _, c := range bins {
		n += c
	}
	return n
}

var _ = Describe("Runner", func() {
	var cfg sim.Config

	BeforeEach(func() {
		cfg = sim.DefaultConfig()
		cfg.Seed = 2024
	})

	It("settles every ball on the default board", func() {
		r, err := sim.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		res, err := r.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Rows).To(Equal(10))
		Expect(res.Bins).To(HaveLen(11))
		Expect(sum(res.Bins)).To(Equal(100))
		Expect(res.Expected).To(HaveLen(11))
		Expect(res.Fit.N).To(Equal(100))
		Expect(res.Ticks).To(BeNumerically(">", 100))
		Expect(r.Engine().Done()).To(BeTrue())
	})

	It("replays identically for the same seed", func() {
		a, err := sim.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		b, err := sim.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		ra, err := a.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		rb, err := b.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(ra.Bins).To(Equal(rb.Bins))
		Expect(ra.Ticks).To(Equal(rb.Ticks))
	})

	It("conserves balls on every tick", func() {
		r, err := sim.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		calls := 0
		r.AddObserver(sim.ObserverFunc(func(s board.Snapshot) {
			calls++
			Expect(s.Settled() + len(s.Balls)).To(Equal(s.Dropped))
			Expect(s.Dropped).To(BeNumerically("<=", s.BallCount))
		}))

		res, err := r.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(res.Ticks))
	})

	It("gives up when the tick budget runs out", func() {
		cfg.MaxTicks = 10
		r, err := sim.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		res, err := r.Run(context.Background())
		Expect(err).To(MatchError(sim.ErrTickLimit))
		Expect(res).NotTo(BeNil())
		Expect(res.Ticks).To(Equal(10))
	})

	It("stops when the context is cancelled", func() {
		r, err := sim.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := r.Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
		Expect(res.Ticks).To(BeZero())
	})

	DescribeTable("rejects configurations that cannot finish",
		func(mutate func(*sim.Config)) {
			mutate(&cfg)
			_, err := sim.New(cfg)
			Expect(err).To(MatchError(sim.ErrInvalidConfig))
		},
		Entry("zero tick budget", func(c *sim.Config) { c.MaxTicks = 0 }),
		Entry("zero spawn probability", func(c *sim.Config) { c.Board.Rates.SpawnProbability = 0 }),
		Entry("spawn probability above one", func(c *sim.Config) { c.Board.Rates.SpawnProbability = 1.5 }),
		Entry("balls that never fall", func(c *sim.Config) { c.Board.Rates.FallSpeed = 0 }),
	)

	Context("at the row limit", func() {
		It("clears the board when rows+ is pressed at fifteen rows", func() {
			cfg.Board.Rows = board.MaxRows
			cfg.Board.Rates.SpawnProbability = 1
			r, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			e := r.Engine()
			e.Start()
			for i := 0; i < 300; i++ {
				e.Tick()
			}
			Expect(e.Dropped()).NotTo(BeZero())

			e.Apply(board.CmdRowsUp)
			s := e.Snapshot()
			Expect(s.Rows).To(Equal(board.MaxRows))
			Expect(s.Balls).To(BeEmpty())
			Expect(s.Bins).To(HaveLen(board.MaxRows + 1))
			Expect(sum(s.Bins)).To(BeZero())
			Expect(s.Dropped).To(BeZero())
			Expect(s.Dropping).To(BeFalse())
		})
	})
})
