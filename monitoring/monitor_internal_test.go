package monitoring

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/recording"
)

type stubReader struct {
	results []any
	total   int
	params  recording.QueryParams
}

func (r *stubReader) Query(
	_ context.Context,
	_ string,
	params recording.QueryParams,
) ([]any, int, error) {
	r.params = params
	return r.results, r.total, nil
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var _ = Describe("Monitor", func() {
	var (
		monitor *Monitor
		reg     *drill.Registry
		router  http.Handler
	)

	BeforeEach(func() {
		reg = drill.NewRegistry()
		reg.Register(drill.Drill{
			Name:    "list/reverse",
			Topic:   "linked-list",
			Minutes: 10,
			Summary: "Reverse a singly linked list in place.",
			Run: func(w io.Writer) error {
				fmt.Fprintln(w, "reversed")
				return nil
			},
		})
		reg.Register(drill.Drill{
			Name:  "bits/broken",
			Topic: "bits",
			Run: func(io.Writer) error {
				return errors.New("property violated")
			},
		})

		runner := drill.RunnerBuilder{}.
			WithRegistry(reg).
			WithOutput(io.Discard).
			Build()

		monitor = NewMonitor()
		monitor.RegisterRegistry(reg)
		monitor.RegisterRunner(runner)
		router = monitor.router()
	})

	It("should list topics", func() {
		rec := get(router, "/api/topics")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal(`["bits","linked-list"]`))
	})

	It("should list drills, optionally by topic", func() {
		rec := get(router, "/api/drills")
		Expect(rec.Body.String()).To(ContainSubstring("list/reverse"))
		Expect(rec.Body.String()).To(ContainSubstring("bits/broken"))

		rec = get(router, "/api/drills?topic=bits")
		Expect(rec.Body.String()).To(ContainSubstring("bits/broken"))
		Expect(rec.Body.String()).ToNot(ContainSubstring("list/reverse"))
	})

	It("should describe a single drill", func() {
		rec := get(router, "/api/drill/list/reverse")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"minutes":10`))
	})

	It("should 404 on unknown drills", func() {
		Expect(get(router, "/api/drill/nope").Code).
			To(Equal(http.StatusNotFound))
		Expect(get(router, "/api/run/nope").Code).
			To(Equal(http.StatusNotFound))
	})

	It("should run a drill and report the result", func() {
		rec := get(router, "/api/run/list/reverse")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"Passed":true`))

		rec = get(router, "/api/run/bits/broken")
		Expect(rec.Body.String()).To(ContainSubstring(`"Passed":false`))
	})

	It("should report recorded results through the reader", func() {
		reader := &stubReader{
			results: []any{drill.Result{ID: "r1", Drill: "list/reverse"}},
			total:   1,
		}
		monitor.RegisterResultReader(reader)

		rec := get(router, "/api/results?limit=5")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"total":1`))
		Expect(reader.params.Limit).To(Equal(5))
	})

	It("should 404 on results without a reader", func() {
		Expect(get(router, "/api/results").Code).To(Equal(http.StatusNotFound))
	})

	It("should track progress bars", func() {
		bar := monitor.CreateProgressBar("warmup", 4)
		bar.IncrementInProgress(2)
		bar.MoveInProgressToFinished(1)

		rec := get(router, "/api/progress")
		Expect(rec.Body.String()).To(ContainSubstring(`"name":"warmup"`))
		Expect(rec.Body.String()).To(ContainSubstring(`"finished":1`))
		Expect(rec.Body.String()).To(ContainSubstring(`"in_progress":1`))

		monitor.CompleteProgressBar(bar)
		rec = get(router, "/api/progress")
		Expect(rec.Body.String()).ToNot(ContainSubstring("warmup"))
	})

	It("should report process resources", func() {
		rec := get(router, "/api/resource")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("cpu_percent"))
		Expect(rec.Body.String()).To(ContainSubstring("memory_size"))
	})

	It("should serve the dashboard at the root", func() {
		rec := get(router, "/")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("<!DOCTYPE html>"))
	})
})
