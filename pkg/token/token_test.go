package token_test

import (
	"mylibrary/pkg/token"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Issuer", func() {
	var issuer *token.Issuer

	BeforeEach(func() {
		issuer = token.NewIssuer()
	})

	Describe("Generate", func() {
		It("should produce a 64 character hex key", func() {
			key, err := issuer.Generate()
			Expect(err).NotTo(HaveOccurred())
			Expect(key).To(HaveLen(64))
			Expect(key).To(MatchRegexp(`^[0-9a-f]+$`))
		})

		It("should not repeat keys", func() {
			seen := map[string]struct{}{}
			for i := 0; i < 100; i++ {
				key, err := issuer.Generate()
				Expect(err).NotTo(HaveOccurred())
				Expect(seen).NotTo(HaveKey(key))
				seen[key] = struct{}{}
			}
		})
	})
})
