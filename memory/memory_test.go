package memory_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/qirsim/memory"
)

var _ = Describe("Allocator", func() {
	var a *memory.Allocator

	BeforeEach(func() {
		a = memory.NewAllocator()
	})

	It("should allocate indices in first-seen order", func() {
		Expect(a.Index(42)).To(Equal(0))
		Expect(a.Index(7)).To(Equal(1))
		Expect(a.Index(0)).To(Equal(2))
		Expect(a.Len()).To(Equal(3))
	})

	It("should reuse the index of a known handle", func() {
		first := a.Index(5)
		a.Index(6)
		Expect(a.Index(5)).To(Equal(first))
		Expect(a.Len()).To(Equal(2))
	})

	It("should look up without allocating", func() {
		_, ok := a.Lookup(9)
		Expect(ok).To(BeFalse())
		Expect(a.Len()).To(Equal(0))
	})
})

var _ = Describe("Memory", func() {
	var m *memory.Memory

	BeforeEach(func() {
		m = memory.New()
	})

	It("should keep qubit and result namespaces apart", func() {
		Expect(m.QubitIndex(3)).To(Equal(0))
		Expect(m.ResultIndex(3)).To(Equal(0))
		Expect(m.QubitIndex(4)).To(Equal(1))
		Expect(m.NumQubits()).To(Equal(2))
		Expect(m.NumResults()).To(Equal(1))
	})

	It("should read back a recorded outcome", func() {
		m.RecordOutcome(1, true)
		Expect(m.ReadOutcome(1)).To(BeTrue())
		Expect(m.Outcomes()).To(Equal(map[int]bool{0: true}))
	})

	It("should read an unrecorded outcome as false", func() {
		Expect(m.ReadOutcome(11)).To(BeFalse())
		Expect(m.NumResults()).To(Equal(0))
	})

	It("should overwrite an outcome", func() {
		m.RecordOutcome(2, true)
		m.RecordOutcome(2, false)
		Expect(m.ReadOutcome(2)).To(BeFalse())
	})
})
