package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/timscodebase/versus/pkg/arena"
	"github.com/timscodebase/versus/pkg/fighters"
	"github.com/timscodebase/versus/pkg/history"
	"github.com/timscodebase/versus/pkg/history/inmemory"
)

var _ = Describe("Server handlers", func() {
	var (
		s      *Server
		driver *inmemory.Driver
	)

	BeforeEach(func() {
		s, driver = newTestServer("http://localhost:0")
	})

	AfterEach(func() {
		if s != nil {
			s.Close()
			s = nil
		}
	})

	Describe("GET /ping", func() {
		It("responds with pong", func() {
			resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(Equal("pong"))
		})
	})

	Describe("GET /", func() {
		It("renders the fight form with a random matchup", func() {
			resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(ContainSubstring("fight-form"))
			Expect(string(body)).To(ContainSubstring(`name="opponent1"`))
			Expect(string(body)).To(ContainSubstring(`name="opponent2"`))
		})
	})

	Describe("GET /api/fighters/random", func() {
		It("returns two distinct roster fighters", func() {
			resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/fighters/random", nil), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var pair struct {
				Opponent1 string `json:"opponent1"`
				Opponent2 string `json:"opponent2"`
			}
			Expect(json.NewDecoder(resp.Body).Decode(&pair)).To(Succeed())
			Expect(pair.Opponent1).NotTo(BeEmpty())
			Expect(pair.Opponent2).NotTo(BeEmpty())
			Expect(pair.Opponent1).NotTo(Equal(pair.Opponent2))
			Expect(fighters.List()).To(ContainElement(pair.Opponent1))
			Expect(fighters.List()).To(ContainElement(pair.Opponent2))
		})
	})

	Describe("GET /api/fights", func() {
		BeforeEach(func() {
			ctx := GinkgoT().Context()
			base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			Expect(driver.Put(ctx, &history.Fight{
				ID: "fight-old", Opponent1: "a cat", Opponent2: "a dog",
				Winner: arena.WinnerOpponent1, CreatedAt: base,
			})).To(Succeed())
			Expect(driver.Put(ctx, &history.Fight{
				ID: "fight-new", Opponent1: "a shark", Opponent2: "an eagle",
				Winner: arena.WinnerOpponent2, CreatedAt: base.Add(time.Hour),
			})).To(Succeed())
		})

		It("lists fights newest first", func() {
			resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/fights", nil), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var fights []*history.Fight
			Expect(json.NewDecoder(resp.Body).Decode(&fights)).To(Succeed())
			Expect(fights).To(HaveLen(2))
			Expect(fights[0].ID).To(Equal("fight-new"))
			Expect(fights[1].ID).To(Equal("fight-old"))
		})

		It("honors the limit parameter", func() {
			resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/fights?limit=1", nil), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			var fights []*history.Fight
			Expect(json.NewDecoder(resp.Body).Decode(&fights)).To(Succeed())
			Expect(fights).To(HaveLen(1))
			Expect(fights[0].ID).To(Equal("fight-new"))
		})

		It("rejects a malformed limit", func() {
			resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/fights?limit=soon", nil), -1)
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})
})

var _ = Describe("New", func() {
	It("requires an upstream URL", func() {
		_, err := New(Config{}, inmemory.NewDriver(), nil)
		Expect(err).To(MatchError("upstream URL is required"))
	})
})
