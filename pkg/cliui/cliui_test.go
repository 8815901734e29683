package cliui

import (
	"bytes"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Step", func() {
	It("reports success with the elapsed time", func() {
		var out bytes.Buffer
		err := Step(&out, "the judge deliberates", func() error { return nil })
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("the judge deliberates"))
		Expect(out.String()).To(ContainSubstring("ms"))
	})

	It("propagates the step's error", func() {
		var out bytes.Buffer
		stepErr := errors.New("stream cut short")
		Expect(Step(&out, "the judge deliberates", func() error { return stepErr })).To(MatchError(stepErr))
	})
})

var _ = Describe("FormatDuration", func() {
	It("uses milliseconds below one second", func() {
		Expect(FormatDuration(12 * time.Millisecond)).To(Equal("12ms"))
	})

	It("uses seconds at one second and above", func() {
		Expect(FormatDuration(3200 * time.Millisecond)).To(Equal("3.2s"))
	})
})

var _ = Describe("Banners", func() {
	It("names the winning opponent", func() {
		Expect(WinnerBanner("a honey badger")).To(ContainSubstring("a honey badger wins!"))
	})

	It("announces an unresolved judgment", func() {
		Expect(UnresolvedBanner()).To(ContainSubstring("declined to name a winner"))
	})
})
