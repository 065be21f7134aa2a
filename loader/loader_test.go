package loader_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32sim/loader"
)

var _ = Describe("Loader", func() {
	Describe("ParseHex", func() {
		It("should parse one word per line", func() {
			prog, err := loader.ParseHex(strings.NewReader("00400093\n00108233\n"))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Words).To(Equal([]uint32{0x00400093, 0x00108233}))
		})

		It("should accept prefixes, comments and several words per line", func() {
			listing := `# demo
0x00400093   // addi x1, x0, 4

0X00108233 0000006f # add, jal
`
			prog, err := loader.ParseHex(strings.NewReader(listing))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Words).To(Equal([]uint32{0x00400093, 0x00108233, 0x0000006f}))
		})

		It("should report the line of a bad word", func() {
			_, err := loader.ParseHex(strings.NewReader("00400093\nzzzz\n"))

			Expect(err).To(MatchError(ContainSubstring("line 2")))
			Expect(err).To(MatchError(ContainSubstring(`"zzzz"`)))
		})

		It("should reject words wider than 32 bits", func() {
			_, err := loader.ParseHex(strings.NewReader("100000000"))
			Expect(err).To(HaveOccurred())
		})

		It("should default the origin to zero", func() {
			prog, err := loader.ParseHex(strings.NewReader("00400093\n"))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Origin).To(Equal(uint32(0)))
		})

		It("should read the origin directive", func() {
			prog, err := loader.ParseHex(strings.NewReader("# boot\n@00000100\n00400093\n"))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Origin).To(Equal(uint32(0x100)))
			Expect(prog.Words).To(Equal([]uint32{0x00400093}))
		})

		It("should accept a 0x prefix on the origin", func() {
			prog, err := loader.ParseHex(strings.NewReader("@0x2000 00400093"))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Origin).To(Equal(uint32(0x2000)))
		})

		It("should reject an origin after the first word", func() {
			_, err := loader.ParseHex(strings.NewReader("00400093\n@00000100\n"))
			Expect(err).To(MatchError(ContainSubstring("line 2: origin must be set once")))
		})

		It("should reject a second origin", func() {
			_, err := loader.ParseHex(strings.NewReader("@100\n@200\n"))
			Expect(err).To(MatchError(ContainSubstring("origin must be set once")))
		})

		It("should reject a misaligned origin", func() {
			_, err := loader.ParseHex(strings.NewReader("@00000102\n"))
			Expect(err).To(MatchError(ContainSubstring("not 4-byte aligned")))
		})

		It("should reject a malformed origin", func() {
			_, err := loader.ParseHex(strings.NewReader("@zz\n"))
			Expect(err).To(MatchError(ContainSubstring(`invalid origin "@zz"`)))
		})

		It("should return an empty program for an empty listing", func() {
			prog, err := loader.ParseHex(strings.NewReader(""))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Words).To(BeEmpty())
		})
	})

	Describe("ParseBinary", func() {
		It("should decode little-endian words", func() {
			prog, err := loader.ParseBinary([]byte{0x93, 0x00, 0x40, 0x00, 0x33, 0x82, 0x10, 0x00})

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Words).To(Equal([]uint32{0x00400093, 0x00108233}))
		})

		It("should reject a partial word", func() {
			_, err := loader.ParseBinary([]byte{0x93, 0x00, 0x40})
			Expect(err).To(MatchError(ContainSubstring("not a multiple of 4")))
		})
	})

	Describe("Load", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "loader-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should load a hex listing", func() {
			path := filepath.Join(tempDir, "prog.hex")
			Expect(os.WriteFile(path, []byte("00400093\n"), 0644)).To(Succeed())

			prog, err := loader.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Words).To(Equal([]uint32{0x00400093}))
		})

		It("should load a binary image by extension", func() {
			path := filepath.Join(tempDir, "prog.bin")
			Expect(os.WriteFile(path, []byte{0x93, 0x00, 0x40, 0x00}, 0644)).To(Succeed())

			prog, err := loader.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Words).To(Equal([]uint32{0x00400093}))
		})

		It("should report a missing file", func() {
			_, err := loader.Load(filepath.Join(tempDir, "missing.hex"))
			Expect(err).To(MatchError(ContainSubstring("failed to read program file")))
		})
	})
})
