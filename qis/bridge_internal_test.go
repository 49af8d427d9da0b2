package qis

import (
	"errors"
	"math"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/qirsim/memory"
	"github.com/sarchlab/qirsim/qir"
	"github.com/sarchlab/qirsim/statevec"
)

var _ = Describe("Bridge", func() {
	var (
		mockCtrl   *gomock.Controller
		mockEngine *MockEngine
		mockMemory *MockMemory
		bridge     *Bridge
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockEngine = NewMockEngine(mockCtrl)
		mockMemory = NewMockMemory(mockCtrl)
		bridge = NewBridge(mockEngine, mockMemory)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	DescribeTable("fixed gates",
		func(op string, m statevec.Matrix) {
			mockMemory.EXPECT().QubitIndex(uint64(5)).Return(2)
			mockEngine.EXPECT().ApplyGate(2, m).Return(nil)

			v, err := bridge.Call(op, []uint64{5})
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Valid).To(BeFalse())
		},
		Entry("h", "__quantum__qis__h__body", statevec.Hadamard),
		Entry("x", "__quantum__qis__x__body", statevec.PauliX),
		Entry("y", "__quantum__qis__y__body", statevec.PauliY),
		Entry("z", "__quantum__qis__z__body", statevec.PauliZ),
		Entry("s", "__quantum__qis__s__body", statevec.PhaseS),
		Entry("t", "__quantum__qis__t__body", statevec.GateT),
		Entry("s adjoint", "__quantum__qis__s__adj", statevec.PhaseSAdj),
		Entry("t adjoint", "__quantum__qis__t__adj", statevec.GateTAdj),
	)

	It("should map both CNOT operands", func() {
		gomock.InOrder(
			mockMemory.EXPECT().QubitIndex(uint64(0)).Return(0),
			mockMemory.EXPECT().QubitIndex(uint64(1)).Return(1),
		)
		mockEngine.EXPECT().ApplyCNOT(0, 1).Return(nil)

		_, err := bridge.Call("__quantum__qis__cnot__body", []uint64{0, 1})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should read the rotation angle from its bit pattern", func() {
		mockMemory.EXPECT().QubitIndex(uint64(3)).Return(1)
		mockEngine.EXPECT().ApplyRY(1, 1.5).Return(nil)

		_, err := bridge.Call("__quantum__qis__ry__body",
			[]uint64{math.Float64bits(1.5), 3})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should record a measurement at its result handle", func() {
		mockMemory.EXPECT().QubitIndex(uint64(0)).Return(0)
		mockEngine.EXPECT().Measure(0).Return(true, nil)
		mockMemory.EXPECT().RecordOutcome(uint64(4), true)

		v, err := bridge.Call("__quantum__qis__mz__body", []uint64{0, 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(Value{Bool: true, Valid: true}))
	})

	It("should measure without a result handle", func() {
		mockMemory.EXPECT().QubitIndex(uint64(0)).Return(0)
		mockEngine.EXPECT().Measure(0).Return(false, nil)

		v, err := bridge.Call("__quantum__qis__mz__body", []uint64{0})
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(Value{Bool: false, Valid: true}))
	})

	It("should read a recorded result", func() {
		mockMemory.EXPECT().ReadOutcome(uint64(2)).Return(true)

		v, err := bridge.Call("__quantum__rt__read_result", []uint64{2})
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Bool).To(BeTrue())
	})

	It("should wrap engine failures as instruction errors", func() {
		mockMemory.EXPECT().QubitIndex(uint64(9)).Return(9)
		mockEngine.EXPECT().ApplyGate(9, statevec.PauliX).
			Return(statevec.ErrQubitOutOfRange)

		_, err := bridge.Call("__quantum__qis__x__body", []uint64{9})
		Expect(errors.Is(err, qir.ErrInstruction)).To(BeTrue())
		Expect(errors.Is(err, statevec.ErrQubitOutOfRange)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("__quantum__qis__x__body"))
	})

	It("should refuse a call with missing operands", func() {
		_, err := bridge.Call("__quantum__qis__cnot__body", []uint64{0})
		Expect(err).To(MatchError(qir.ErrInstruction))
	})

	It("should skip unsupported operators", func() {
		v, err := bridge.Call("__quantum__qis__ccx__body", []uint64{0, 1, 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Valid).To(BeFalse())
		Expect(bridge.Unsupported()).To(Equal(1))
	})

	It("should accept runtime bookkeeping calls", func() {
		_, err := bridge.Call("__quantum__rt__initialize", []uint64{0})
		Expect(err).NotTo(HaveOccurred())
		_, err = bridge.Call("__quantum__rt__tuple_record_output", []uint64{2, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(bridge.Unsupported()).To(BeZero())
	})

	It("should collect recorded outputs in order", func() {
		gomock.InOrder(
			mockMemory.EXPECT().ReadOutcome(uint64(0)).Return(true),
			mockMemory.EXPECT().ReadOutcome(uint64(1)).Return(false),
		)

		_, err := bridge.Call("__quantum__rt__result_record_output", []uint64{0, 0})
		Expect(err).NotTo(HaveOccurred())
		_, err = bridge.Call("__quantum__rt__result_record_output", []uint64{1, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(bridge.Records()).To(Equal([]bool{true, false}))
	})
})

var _ = Describe("Bridge over a simulator", func() {
	var (
		sim    *statevec.Simulator
		mem    *memory.Memory
		bridge *Bridge
	)

	BeforeEach(func() {
		sim = statevec.NewBuilder().WithQubits(2).WithSeed(1).Build()
		mem = memory.New()
		bridge = NewBridge(sim, mem)
	})

	It("should round-trip a measurement through read_result", func() {
		_, err := bridge.Call("__quantum__qis__h__body", []uint64{0})
		Expect(err).NotTo(HaveOccurred())

		measured, err := bridge.Call("__quantum__qis__mz__body", []uint64{0, 0})
		Expect(err).NotTo(HaveOccurred())
		read, err := bridge.Call("__quantum__qis__read_result__body", []uint64{0})
		Expect(err).NotTo(HaveOccurred())

		Expect(read.Bool).To(Equal(measured.Bool))
	})

	It("should leave mresetz qubits in |0>", func() {
		_, err := bridge.Call("__quantum__qis__x__body", []uint64{0})
		Expect(err).NotTo(HaveOccurred())

		v, err := bridge.Call("__quantum__qis__mresetz__body", []uint64{0, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Bool).To(BeTrue())
		Expect(sim.Probabilities()[0]).To(BeNumerically("~", 1, 1e-9))
	})

	It("should fail when handles outgrow the register", func() {
		for h := uint64(0); h < 2; h++ {
			_, err := bridge.Call("__quantum__qis__h__body", []uint64{h})
			Expect(err).NotTo(HaveOccurred())
		}

		_, err := bridge.Call("__quantum__qis__h__body", []uint64{2})
		Expect(err).To(MatchError(qir.ErrInstruction))
	})

	It("should compare results", func() {
		_, err := bridge.Call("__quantum__qis__x__body", []uint64{0})
		Expect(err).NotTo(HaveOccurred())
		_, err = bridge.Call("__quantum__qis__x__body", []uint64{1})
		Expect(err).NotTo(HaveOccurred())
		_, err = bridge.Call("__quantum__qis__mz__body", []uint64{0, 0})
		Expect(err).NotTo(HaveOccurred())
		_, err = bridge.Call("__quantum__qis__mz__body", []uint64{1, 1})
		Expect(err).NotTo(HaveOccurred())

		v, err := bridge.Call("__quantum__rt__result_equal", []uint64{0, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Bool).To(BeTrue())
	})
})

var _ = Describe("Operator table", func() {
	It("should know the measurement operators", func() {
		Expect(IsSupported("__quantum__qis__mz__body")).To(BeTrue())
		Expect(IsSupported("__quantum__qis__foo__body")).To(BeFalse())
		Expect(Operators()).To(ContainElement("__quantum__qis__cz__body"))
	})

	It("should locate qubit operands", func() {
		Expect(QubitOperands("__quantum__qis__rz__body")).To(Equal([]int{1}))
		Expect(QubitOperands("__quantum__qis__cnot__body")).To(Equal([]int{0, 1}))
		Expect(QubitOperands("__quantum__rt__read_result")).To(BeEmpty())
	})
})
