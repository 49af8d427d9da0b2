package qir_test

import (
	"bytes"
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/qirsim/qir"
)

var _ = Describe("Trace", func() {
	var (
		buf  bytes.Buffer
		prev *slog.Logger
	)

	BeforeEach(func() {
		buf.Reset()
		prev = slog.Default()
	})

	AfterEach(func() {
		slog.SetDefault(prev)
	})

	use := func(level slog.Level) {
		slog.SetDefault(slog.New(slog.NewTextHandler(&buf,
			&slog.HandlerOptions{Level: level})))
	}

	It("should stay below debug", func() {
		Expect(qir.LevelTrace).To(BeNumerically("<", slog.LevelDebug))
	})

	It("should be silent at the default info level", func() {
		use(slog.LevelInfo)

		qir.Trace("Call", "Op", "__quantum__qis__h__body")

		Expect(buf.String()).To(BeEmpty())
		Expect(slog.Default().Enabled(context.Background(), qir.LevelTrace)).To(BeFalse())
	})

	It("should print when the trace level is enabled", func() {
		use(qir.LevelTrace)

		qir.Trace("Call", "Op", "__quantum__qis__h__body")

		Expect(buf.String()).To(ContainSubstring("Op=__quantum__qis__h__body"))
	})
})
