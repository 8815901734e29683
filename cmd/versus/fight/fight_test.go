package fightcmder_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	fightcmder "github.com/timscodebase/versus/cmd/versus/fight"
)

var _ = Describe("Fight Command", func() {
	Describe("NewFightCmd", func() {
		It("creates a command with expected properties", func() {
			cmd := fightcmder.NewFightCmd()
			Expect(cmd.Use).To(Equal("fight <opponent1> <opponent2>"))
			Expect(cmd.Short).NotTo(BeEmpty())
		})

		It("has --target flag", func() {
			cmd := fightcmder.NewFightCmd()
			flag := cmd.Flags().Lookup("target")
			Expect(flag).NotTo(BeNil())
		})

		It("requires exactly two opponents", func() {
			cmd := fightcmder.NewFightCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"just one"})

			Expect(cmd.Execute()).To(HaveOccurred())
		})
	})

	Describe("running a fight", func() {
		var server *httptest.Server

		AfterEach(func() {
			if server != nil {
				server.Close()
				server = nil
			}
		})

		It("streams the transcript and announces the winner", func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/fight"))
				Expect(r.FormValue("opponent1")).To(Equal("a honey badger"))
				Expect(r.FormValue("opponent2")).To(Equal("a grizzly bear"))

				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				flusher, ok := w.(http.Flusher)
				Expect(ok).To(BeTrue())

				for _, chunk := range []string{"The badger never quits.\n", "winner: opponent1\n"} {
					fmt.Fprint(w, chunk)
					flusher.Flush()
				}
			}))

			cmd := fightcmder.NewFightCmd()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetArgs([]string{"a honey badger", "a grizzly bear", "--target", server.URL})

			Expect(cmd.Execute()).To(Succeed())
			Expect(out.String()).To(ContainSubstring("The badger never quits."))
			Expect(out.String()).To(ContainSubstring("a honey badger wins!"))
		})

		It("renders the transcript after the stream ends with --pretty", func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "**The badger never quits.**\n\nwinner: opponent1\n")
			}))

			cmd := fightcmder.NewFightCmd()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetArgs([]string{"a honey badger", "a grizzly bear", "--target", server.URL, "--pretty"})

			Expect(cmd.Execute()).To(Succeed())
			Expect(out.String()).To(ContainSubstring("The badger never quits."))
			Expect(out.String()).To(ContainSubstring("a honey badger wins!"))
		})

		It("reports an unresolved winner", func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "Too close to call.\n")
			}))

			cmd := fightcmder.NewFightCmd()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetArgs([]string{"a cat", "a dog", "--target", server.URL})

			Expect(cmd.Execute()).To(Succeed())
			Expect(out.String()).To(ContainSubstring("declined to name a winner"))
		})

		It("surfaces validation errors from the server", func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string][]string{
					"errors": {"opponent1 is required"},
				})
			}))

			cmd := fightcmder.NewFightCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{" ", "a dog", "--target", server.URL})

			err := cmd.Execute()
			Expect(err).To(MatchError(ContainSubstring("opponent1 is required")))
		})
	})
})
