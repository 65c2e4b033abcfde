package cache_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/csim/cache"
)

var _ = Describe("Engine", func() {
	// Geometry s=2, b=2: addresses that differ only above bit 4 map to the
	// same set with different tags.
	var engine *cache.Engine

	buildEngine := func(linesPerSet int) *cache.Engine {
		return cache.MakeBuilder().
			WithSetIndexBits(2).
			WithBlockOffsetBits(2).
			WithLinesPerSet(linesPerSet).
			Build("l1")
	}

	BeforeEach(func() {
		engine = buildEngine(2)
	})

	It("should miss then hit on a repeated address", func() {
		Expect(engine.Access(0x10)).To(Equal(cache.OutcomeMiss))
		Expect(engine.Access(0x10)).To(Equal(cache.OutcomeHit))

		Expect(engine.Stats()).To(Equal(cache.Stats{Hits: 1, Misses: 1}))
	})

	It("should hit anywhere within a block", func() {
		engine.Access(0x10)

		Expect(engine.Access(0x13)).To(Equal(cache.OutcomeHit))
	})

	It("should thrash a direct-mapped set", func() {
		direct := buildEngine(1)

		// Same set (set 0), different tags.
		a := uint64(0x00)
		b := uint64(0x100)

		Expect(direct.Access(a)).To(Equal(cache.OutcomeMiss))
		Expect(direct.Access(b)).To(Equal(cache.OutcomeMissEvict))
		Expect(direct.Access(a)).To(Equal(cache.OutcomeMissEvict))
		Expect(direct.Access(b)).To(Equal(cache.OutcomeMissEvict))

		Expect(direct.Stats()).To(Equal(cache.Stats{
			Misses:    4,
			Evictions: 3,
		}))
	})

	It("should evict in LRU order, not FIFO order", func() {
		// Three tags for set 0 in a 2-way set: A, B, C, A.
		a := uint64(0x000)
		b := uint64(0x100)
		c := uint64(0x200)

		Expect(engine.Access(a)).To(Equal(cache.OutcomeMiss))
		Expect(engine.Access(b)).To(Equal(cache.OutcomeMiss))

		// C evicts A, the least recently used of {A, B}. A FIFO policy
		// would keep A's slot and evict B here instead.
		Expect(engine.Access(c)).To(Equal(cache.OutcomeMissEvict))

		// A in turn evicts B, now the least recently used of {B, C}.
		Expect(engine.Access(a)).To(Equal(cache.OutcomeMissEvict))
		Expect(engine.Access(c)).To(Equal(cache.OutcomeHit))
	})

	It("should refresh recency on hits", func() {
		a := uint64(0x000)
		b := uint64(0x100)
		c := uint64(0x200)

		engine.Access(a)
		engine.Access(b)
		engine.Access(a) // A is now newer than B.

		Expect(engine.Access(c)).To(Equal(cache.OutcomeMissEvict))
		Expect(engine.Access(a)).To(Equal(cache.OutcomeHit))
		Expect(engine.Access(b)).To(Equal(cache.OutcomeMissEvict))
	})

	It("should fill a set before evicting", func() {
		wide := buildEngine(4)

		numTags := 7
		for i := 0; i < numTags; i++ {
			addr := uint64(i) << 4 // distinct tags, all set 0
			outcome := wide.Access(addr)

			if i < 4 {
				Expect(outcome).To(Equal(cache.OutcomeMiss))
			} else {
				Expect(outcome).To(Equal(cache.OutcomeMissEvict))
			}
		}

		Expect(wide.Stats()).To(Equal(cache.Stats{
			Misses:    uint64(numTags),
			Evictions: uint64(numTags - 4),
		}))
	})

	It("should produce identical counts for identical traces", func() {
		addrs := []uint64{
			0x10, 0x20, 0x20, 0x22, 0x18, 0x110, 0x210, 0x12, 0x310, 0x20,
		}

		run := func() cache.Stats {
			e := buildEngine(2)
			for _, addr := range addrs {
				e.Access(addr)
			}

			return e.Stats()
		}

		Expect(run()).To(Equal(run()))
	})

	It("should return to the cold state on reset", func() {
		engine.Access(0x10)
		engine.Access(0x10)

		engine.Reset()

		Expect(engine.Stats()).To(Equal(cache.Stats{}))
		Expect(engine.Access(0x10)).To(Equal(cache.OutcomeMiss))
	})

	It("should report its name and geometry", func() {
		Expect(engine.Name()).To(Equal("l1"))
		Expect(engine.Geometry()).To(Equal(cache.Geometry{
			SetIndexBits:    2,
			BlockOffsetBits: 2,
			LinesPerSet:     2,
		}))
	})

	It("should panic when built with an invalid geometry", func() {
		Expect(func() {
			cache.MakeBuilder().WithLinesPerSet(0).Build("broken")
		}).To(Panic())
	})
})
