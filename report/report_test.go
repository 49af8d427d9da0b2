package report_test

import (
	"bytes"
	"math"

	"github.com/fxamacker/cbor/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/qirsim/report"
)

var _ = Describe("Distribution", func() {
	h := complex(1/math.Sqrt2, 0)

	It("should pad labels to the qubit count", func() {
		Expect(report.BasisLabel(5, 4)).To(Equal("0101"))
		Expect(report.BasisLabel(0, 3)).To(Equal("000"))
	})

	It("should keep states above the threshold", func() {
		dist := report.Distribution([]complex128{h, 0, 1e-4, h}, 2, report.BulkThreshold)
		Expect(dist).To(HaveLen(3))
		Expect(dist["00"]).To(BeNumerically("~", 0.5, 1e-12))
		Expect(dist["11"]).To(BeNumerically("~", 0.5, 1e-12))
		Expect(dist).To(HaveKey("10"))
	})

	It("should drop states at the print threshold", func() {
		dist := report.Distribution([]complex128{h, 0, 1e-4, h}, 2, report.PrintThreshold)
		Expect(dist).NotTo(HaveKey("10"))
	})

	It("should order entries by basis", func() {
		entries := report.Entries(map[string]float64{"11": 0.5, "00": 0.5})
		Expect(entries[0].Basis).To(Equal("00"))
		Expect(entries[1].Basis).To(Equal("11"))
	})
})

var _ = Describe("Writers", func() {
	dist := map[string]float64{"11": 0.5, "00": 0.5}

	It("should print the text format", func() {
		var buf bytes.Buffer
		Expect(report.WriteText(&buf, dist)).To(Succeed())
		Expect(buf.String()).To(Equal(
			"Current Probability Distribution:\n|00>: 0.5000\n|11>: 0.5000\n"))
	})

	It("should print a table", func() {
		var buf bytes.Buffer
		Expect(report.WriteTable(&buf, dist)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("|00>"))
		Expect(buf.String()).To(ContainSubstring("1.0000"))
	})

	It("should print a histogram", func() {
		hist := report.NewHistogram()
		hist.Add("00")
		hist.Add("11")
		hist.Add("11")

		var buf bytes.Buffer
		Expect(report.WriteHistogram(&buf, hist)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("3 shots"))
		Expect(buf.String()).To(ContainSubstring("0.6667"))
	})

	It("should skip an empty variable table", func() {
		var buf bytes.Buffer
		Expect(report.WriteVars(&buf, nil)).To(Succeed())
		Expect(buf.Len()).To(BeZero())
	})
})

var _ = Describe("Histogram", func() {
	It("should key outcomes by result slot", func() {
		Expect(report.OutcomeKey(map[int]bool{0: true, 2: true})).To(Equal("101"))
		Expect(report.OutcomeKey(nil)).To(Equal(""))
		Expect(report.RecordKey([]bool{false, true})).To(Equal("01"))
	})

	It("should merge counts", func() {
		a := report.NewHistogram()
		a.Add("0")
		b := report.NewHistogram()
		b.Add("0")
		b.Add("1")

		a.Merge(b)
		Expect(a.Shots).To(Equal(3))
		Expect(a.Counts).To(Equal(map[string]int{"0": 2, "1": 1}))
		Expect(a.Frequency("1")).To(BeNumerically("~", 1.0/3, 1e-12))
		Expect(a.Keys()).To(Equal([]string{"0", "1"}))
	})
})

var _ = Describe("Encode", func() {
	entries := []report.Entry{{Basis: "01", Probability: 1}}

	It("should encode YAML", func() {
		var buf bytes.Buffer
		Expect(report.Encode(&buf, report.FormatYAML, entries)).To(Succeed())

		var back []report.Entry
		Expect(yaml.Unmarshal(buf.Bytes(), &back)).To(Succeed())
		Expect(back).To(Equal(entries))
	})

	It("should encode msgpack", func() {
		var buf bytes.Buffer
		Expect(report.Encode(&buf, report.FormatMsgpack, entries)).To(Succeed())

		var back []report.Entry
		Expect(msgpack.Unmarshal(buf.Bytes(), &back)).To(Succeed())
		Expect(back).To(Equal(entries))
	})

	It("should encode canonical CBOR", func() {
		var first, second bytes.Buffer
		hist := &report.Histogram{Counts: map[string]int{"1": 4, "0": 6}, Shots: 10}
		Expect(report.Encode(&first, report.FormatCBOR, hist)).To(Succeed())
		Expect(report.Encode(&second, report.FormatCBOR, hist)).To(Succeed())
		Expect(first.Bytes()).To(Equal(second.Bytes()))

		var back report.Histogram
		Expect(cbor.Unmarshal(first.Bytes(), &back)).To(Succeed())
		Expect(back).To(Equal(*hist))
	})

	It("should reject other formats", func() {
		var buf bytes.Buffer
		Expect(report.Encode(&buf, "xml", entries)).To(MatchError(report.ErrUnknownFormat))
		Expect(report.IsFormat("table")).To(BeTrue())
		Expect(report.IsEncoding("table")).To(BeFalse())
	})
})
