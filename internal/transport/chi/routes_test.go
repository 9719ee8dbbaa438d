package chi

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestOperations_CoverEveryRoute(t *testing.T) {
	r, ok := newFixture().handler.(chi.Routes)
	if !ok {
		t.Fatal("handler is not a chi router")
	}

	mounted := map[string]bool{}
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if _, ok := Operations[route]; !ok {
			t.Errorf("%s %s has no operation label", method, route)
		}
		mounted[route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	for route := range Operations {
		if !mounted[route] {
			t.Errorf("operation route %s is not mounted", route)
		}
	}
}
