package qir_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/qirsim/qir"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

var _ = Describe("Program", func() {
	const text = `define void @main() #0 {
entry:
  br label %exit
skipped:
  call void @__quantum__qis__x__body(%Qubit* null)
exit:
  ret void
}`

	It("should build the label table", func() {
		p, err := qir.ParseProgram(text)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Len()).To(Equal(8))

		idx, err := p.Resolve("exit")
		Expect(err).NotTo(HaveOccurred())
		Expect(idx).To(Equal(5))
		Expect(p.HasLabel("entry")).To(BeTrue())
		Expect(p.At(2).Kind).To(Equal(qir.KindUncondBranch))
		Expect(p.Line(4)).To(ContainSubstring("__quantum__qis__x__body"))
	})

	It("should fail to resolve an unknown label", func() {
		p, err := qir.ParseProgram(text)
		Expect(err).NotTo(HaveOccurred())

		_, err = p.Resolve("nowhere")
		Expect(errors.Is(err, qir.ErrParse)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("nowhere"))
	})

	It("should reject duplicate labels", func() {
		_, err := qir.NewProgram([]string{"a:", "b:", "a:"})
		Expect(errors.Is(err, qir.ErrParse)).To(BeTrue())
	})

	It("should report read failures as io errors", func() {
		_, err := qir.LoadProgram(failingReader{})
		Expect(errors.Is(err, qir.ErrIO)).To(BeTrue())
	})

	It("should report missing files as io errors", func() {
		_, err := qir.LoadProgramFile(filepath.Join(os.TempDir(), "no-such.ll"))
		Expect(errors.Is(err, qir.ErrIO)).To(BeTrue())
	})

	It("should load a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "prog.ll")
		Expect(os.WriteFile(path, []byte(text), 0o644)).To(Succeed())

		p, err := qir.LoadProgramFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Len()).To(Equal(len(strings.Split(text, "\n"))))
	})

	It("should read raw lines even with duplicate labels", func() {
		lines, err := qir.ReadLines(strings.NewReader("a:\na:\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(Equal([]string{"a:", "a:"}))
	})
})
