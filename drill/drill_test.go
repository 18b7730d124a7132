package drill_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/hooking"
)

func passing(name, topic string) drill.Drill {
	return drill.Drill{
		Name:       name,
		Topic:      topic,
		Difficulty: drill.Easy,
		Minutes:    10,
		Run: func(w io.Writer) error {
			fmt.Fprintf(w, "%s ok\n", name)
			return nil
		},
	}
}

func failing(name, topic string) drill.Drill {
	return drill.Drill{
		Name:  name,
		Topic: topic,
		Run: func(io.Writer) error {
			return errors.New("property violated")
		},
	}
}

var _ = Describe("Registry", func() {
	var reg *drill.Registry

	BeforeEach(func() {
		reg = drill.NewRegistry()
	})

	It("should register and look up drills", func() {
		reg.Register(passing("bits/count", "bits"))

		d, ok := reg.Lookup("bits/count")
		Expect(ok).To(BeTrue())
		Expect(d.Topic).To(Equal("bits"))
		Expect(reg.Len()).To(Equal(1))

		_, ok = reg.Lookup("nope")
		Expect(ok).To(BeFalse())
	})

	It("should reject duplicates and incomplete drills", func() {
		reg.Register(passing("a", "t"))

		Expect(func() { reg.Register(passing("a", "t")) }).To(Panic())
		Expect(func() { reg.Register(drill.Drill{Name: "b"}) }).To(Panic())
	})

	It("should list topics and drills sorted", func() {
		reg.Register(passing("z/one", "zeta"))
		reg.Register(passing("a/two", "alpha"))
		reg.Register(passing("a/one", "alpha"))

		Expect(reg.Topics()).To(Equal([]string{"alpha", "zeta"}))

		byTopic := reg.ByTopic("alpha")
		Expect(byTopic).To(HaveLen(2))
		Expect(byTopic[0].Name).To(Equal("a/one"))
		Expect(byTopic[1].Name).To(Equal("a/two"))

		Expect(reg.ByTopic("missing")).To(BeEmpty())

		all := reg.All()
		Expect(all).To(HaveLen(3))
		Expect(all[0].Name).To(Equal("a/one"))
	})
})

var _ = Describe("Runner", func() {
	var (
		mockCtrl *gomock.Controller
		reg      *drill.Registry
		out      *bytes.Buffer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		reg = drill.NewRegistry()
		out = &bytes.Buffer{}

		reg.Register(passing("list/merge", "linked-list"))
		reg.Register(passing("list/reverse", "linked-list"))
		reg.Register(failing("bits/broken", "bits"))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should need a registry", func() {
		Expect(func() { drill.RunnerBuilder{}.Build() }).To(Panic())
	})

	It("should run a drill and capture its output", func() {
		runner := drill.RunnerBuilder{}.
			WithRegistry(reg).
			WithOutput(out).
			Build()

		result, err := runner.RunDrill("list/merge")
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Passed).To(BeTrue())
		Expect(result.Drill).To(Equal("list/merge"))
		Expect(result.Topic).To(Equal("linked-list"))
		Expect(result.ID).ToNot(BeEmpty())
		Expect(out.String()).To(ContainSubstring("list/merge ok"))
	})

	It("should report unknown drills", func() {
		runner := drill.RunnerBuilder{}.WithRegistry(reg).Build()

		_, err := runner.RunDrill("missing")
		Expect(err).To(HaveOccurred())
	})

	It("should mark failed drills without aborting", func() {
		runner := drill.RunnerBuilder{}.WithRegistry(reg).Build()

		result, err := runner.RunDrill("bits/broken")
		Expect(err).ToNot(HaveOccurred(), "a failing drill is a result, not an error")
		Expect(result.Passed).To(BeFalse())
		Expect(result.Detail).To(ContainSubstring("property violated"))
	})

	It("should run a whole topic in order", func() {
		runner := drill.RunnerBuilder{}.WithRegistry(reg).Build()

		results, err := runner.RunTopic("linked-list")
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Drill).To(Equal("list/merge"))
		Expect(results[1].Drill).To(Equal("list/reverse"))

		_, err = runner.RunTopic("missing")
		Expect(err).To(HaveOccurred())
	})

	It("should record every result", func() {
		recorder := NewMockRecorder(mockCtrl)
		recorder.EXPECT().CreateTable(drill.ResultTable, gomock.Any())
		recorder.EXPECT().InsertData(drill.ResultTable, gomock.Any()).Times(3)

		runner := drill.RunnerBuilder{}.
			WithRegistry(reg).
			WithRecorder(recorder).
			Build()

		results := runner.RunAll()
		Expect(results).To(HaveLen(3))
	})

	It("should fire hooks around each run", func() {
		runner := drill.RunnerBuilder{}.WithRegistry(reg).Build()

		var positions []*hooking.Pos
		runner.AcceptHook(func(ctx hooking.Ctx) {
			positions = append(positions, ctx.Pos)
		})

		_, _ = runner.RunDrill("list/merge")
		Expect(positions).To(Equal([]*hooking.Pos{
			drill.HookPosStart, drill.HookPosEnd,
		}))

		positions = nil
		_, _ = runner.RunDrill("bits/broken")
		Expect(positions).To(Equal([]*hooking.Pos{
			drill.HookPosStart, drill.HookPosFail,
		}))
	})
})

var _ = Describe("Plan", func() {
	var (
		reg *drill.Registry
	)

	BeforeEach(func() {
		reg = drill.NewRegistry()
		for _, name := range []string{"a", "b", "c", "d"} {
			reg.Register(passing("list/"+name, "linked-list"))
		}
		reg.Register(passing("bits/x", "bits"))
	})

	It("should parse plan YAML", func() {
		p, err := drill.ParsePlan([]byte(`
name: warmup
seed: 42
topics:
  - topic: linked-list
    count: 2
    shuffle: true
  - topic: bits
`))
		Expect(err).ToNot(HaveOccurred())
		Expect(p.Name).To(Equal("warmup"))
		Expect(p.Seed).To(Equal(int64(42)))
		Expect(p.Topics).To(HaveLen(2))
		Expect(p.Topics[0].Count).To(Equal(2))
		Expect(p.Topics[0].Shuffle).To(BeTrue())
	})

	It("should reject malformed plans", func() {
		_, err := drill.ParsePlan([]byte("topics: []"))
		Expect(err).To(HaveOccurred())

		_, err = drill.ParsePlan([]byte("topics:\n  - count: 3"))
		Expect(err).To(HaveOccurred())

		_, err = drill.ParsePlan([]byte("topics:\n  - topic: t\n    count: -1"))
		Expect(err).To(HaveOccurred())

		_, err = drill.ParsePlan([]byte("{not yaml"))
		Expect(err).To(HaveOccurred())
	})

	It("should run the selected drills", func() {
		runner := drill.RunnerBuilder{}.WithRegistry(reg).Build()

		p := drill.Plan{
			Seed: 1,
			Topics: []drill.PlanTopic{
				{Topic: "linked-list", Count: 2},
				{Topic: "bits"},
			},
		}

		results, err := runner.RunPlan(p)
		Expect(err).ToNot(HaveOccurred())
		Expect(results).To(HaveLen(3))
		Expect(results[2].Topic).To(Equal("bits"))
	})

	It("should shuffle deterministically by seed", func() {
		runner := drill.RunnerBuilder{}.WithRegistry(reg).Build()

		p := drill.Plan{
			Seed: 7,
			Topics: []drill.PlanTopic{
				{Topic: "linked-list", Shuffle: true},
			},
		}

		first, err := runner.RunPlan(p)
		Expect(err).ToNot(HaveOccurred())

		second, err := runner.RunPlan(p)
		Expect(err).ToNot(HaveOccurred())

		names := func(rs []drill.Result) []string {
			var out []string
			for _, r := range rs {
				out = append(out, r.Drill)
			}
			return out
		}

		Expect(names(second)).To(Equal(names(first)))
	})

	It("should fail on unknown topics", func() {
		runner := drill.RunnerBuilder{}.WithRegistry(reg).Build()

		_, err := runner.RunPlan(drill.Plan{
			Topics: []drill.PlanTopic{{Topic: "missing"}},
		})
		Expect(err).To(HaveOccurred())
	})
})
