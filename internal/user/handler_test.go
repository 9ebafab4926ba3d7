package user_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/techhive/user-api/internal/user"
	"github.com/techhive/user-api/internal/user/memory"
)

var _ = Describe("User Handler", func() {
	var (
		store  *memory.Store
		router *chi.Mux
	)

	doJSON := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		store = memory.NewStore()
		service := user.NewService(store, slogger)
		handler := user.NewHandler(service)

		router = chi.NewRouter()
		router.Route("/api/users", handler.Routes)
	})

	Describe("GET /api/users", func() {
		It("returns all users sorted by ID", func() {
			store.Insert(user.User{FirstName: "A", LastName: "A", Email: "a@b.co"})
			store.Insert(user.User{FirstName: "B", LastName: "B", Email: "b@b.co"})

			w := doJSON(http.MethodGet, "/api/users", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var users []user.User
			Expect(json.NewDecoder(w.Body).Decode(&users)).To(Succeed())
			Expect(users).To(HaveLen(2))
			Expect(users[0].ID).To(BeNumerically("<", users[1].ID))
		})

		It("returns an empty array on an empty store", func() {
			w := doJSON(http.MethodGet, "/api/users", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
		})
	})

	Describe("GET /api/users/{id}", func() {
		It("returns the user", func() {
			stored, err := store.Insert(user.User{FirstName: "A", LastName: "A", Email: "a@b.co"})
			Expect(err).NotTo(HaveOccurred())

			w := doJSON(http.MethodGet, "/api/users/1", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var got user.User
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.ID).To(Equal(stored.ID))
			Expect(got.Email).To(Equal("a@b.co"))
		})

		It("names the missing ID in the 404 body", func() {
			w := doJSON(http.MethodGet, "/api/users/42", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring(`"error":"User with ID 42 not found."`))
		})

		It("treats a non-integer ID as not found", func() {
			w := doJSON(http.MethodGet, "/api/users/abc", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("POST /api/users", func() {
		It("creates a user and sets the Location header", func() {
			w := doJSON(http.MethodPost, "/api/users",
				`{"firstName":"Carol","lastName":"White","email":"carol@techhive.io","department":"Sales"}`)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Header().Get("Location")).To(Equal("/api/users/1"))

			var got user.User
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.ID).To(Equal(int64(1)))
			Expect(got.IsActive).To(BeTrue())
			Expect(got.CreatedAt).NotTo(BeZero())
		})

		It("trims text fields before storing", func() {
			w := doJSON(http.MethodPost, "/api/users",
				`{"firstName":"  Carol ","lastName":" White ","email":" carol@techhive.io "}`)
			Expect(w.Code).To(Equal(http.StatusCreated))

			var got user.User
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.FirstName).To(Equal("Carol"))
			Expect(got.Email).To(Equal("carol@techhive.io"))
		})

		It("returns field-keyed validation errors without touching the store", func() {
			w := doJSON(http.MethodPost, "/api/users",
				`{"firstName":"","lastName":"X","email":"a@b.com"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var body struct {
				Error  string              `json:"error"`
				Errors map[string][]string `json:"errors"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.Error).To(Equal("Validation failed."))
			Expect(body.Errors).To(HaveKey("FirstName"))

			Expect(store.Count()).To(BeZero())
		})

		It("rejects a malformed body", func() {
			w := doJSON(http.MethodPost, "/api/users", `{not json`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("honors an explicit isActive false", func() {
			w := doJSON(http.MethodPost, "/api/users",
				`{"firstName":"C","lastName":"W","email":"c@b.co","isActive":false}`)
			Expect(w.Code).To(Equal(http.StatusCreated))

			var got user.User
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.IsActive).To(BeFalse())
		})
	})

	Describe("PUT /api/users/{id}", func() {
		BeforeEach(func() {
			_, err := store.Insert(user.User{
				FirstName:  "Alice",
				LastName:   "Johnson",
				Email:      "alice@techhive.io",
				Department: "Engineering",
				IsActive:   true,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("applies a partial update", func() {
			w := doJSON(http.MethodPut, "/api/users/1", `{"title":"Staff Engineer"}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			var got user.User
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.Title).To(Equal("Staff Engineer"))
			Expect(got.FirstName).To(Equal("Alice"))
		})

		It("keeps a name when sent blank but clears a blank department", func() {
			w := doJSON(http.MethodPut, "/api/users/1", `{"firstName":"","department":""}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			var got user.User
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.FirstName).To(Equal("Alice"))
			Expect(got.Department).To(BeEmpty())
		})

		It("returns 404 for a nonexistent ID regardless of body", func() {
			w := doJSON(http.MethodPut, "/api/users/999", `{"firstName":"Ghost"}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("User with ID 999 not found."))
		})

		It("rejects an invalid email without modifying the user", func() {
			w := doJSON(http.MethodPut, "/api/users/1", `{"email":"broken"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			current, err := store.Get(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(current.Email).To(Equal("alice@techhive.io"))
		})
	})

	Describe("DELETE /api/users/{id}", func() {
		It("deletes and returns 204 with no body", func() {
			store.Insert(user.User{FirstName: "A", LastName: "A", Email: "a@b.co"})

			w := doJSON(http.MethodDelete, "/api/users/1", "")
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(BeZero())
		})

		It("keeps returning 404 for an already-deleted ID", func() {
			store.Insert(user.User{FirstName: "A", LastName: "A", Email: "a@b.co"})

			Expect(doJSON(http.MethodDelete, "/api/users/1", "").Code).To(Equal(http.StatusNoContent))
			Expect(doJSON(http.MethodDelete, "/api/users/1", "").Code).To(Equal(http.StatusNotFound))
			Expect(doJSON(http.MethodDelete, "/api/users/1", "").Code).To(Equal(http.StatusNotFound))
		})
	})
})
