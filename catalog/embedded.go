package catalog

import (
	"fmt"
	"io"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/embedded"
)

func registerEmbedded(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "embedded/traffic-light",
		Topic:      "embedded",
		Difficulty: drill.Medium,
		Minutes:    25,
		Summary:    "Table-driven FSM for a traffic light with a pedestrian request.",
		Run:        runTrafficLight,
	})

	reg.Register(drill.Drill{
		Name:       "embedded/frame-parser",
		Topic:      "embedded",
		Difficulty: drill.Hard,
		Minutes:    30,
		Summary:    "Byte-at-a-time serial sentence parser with checksum and resync.",
		Run:        runFrameParser,
	})
}

func runTrafficLight(w io.Writer) error {
	const (
		red embedded.State = iota
		green
		yellow
	)
	const (
		timer embedded.Event = iota
		pedestrian
	)

	var log []string
	note := func(s string) func() {
		return func() { log = append(log, s) }
	}

	m := embedded.NewMachine(red)
	m.On(red, timer, embedded.Transition{Next: green, Action: note("go")})
	m.On(green, timer, embedded.Transition{Next: yellow, Action: note("slow")})
	m.On(green, pedestrian, embedded.Transition{Next: yellow, Action: note("slow")})
	m.On(yellow, timer, embedded.Transition{Next: red, Action: note("stop")})

	steps := []struct {
		ev    embedded.Event
		taken bool
		want  embedded.State
	}{
		{pedestrian, false, red}, // ignored while red
		{timer, true, green},
		{pedestrian, true, yellow},
		{timer, true, red},
	}

	for _, step := range steps {
		taken := m.Fire(step.ev)
		fmt.Fprintf(w, "event %d: transition taken %v, state %d\n",
			step.ev, taken, m.State())

		if err := firstErr(
			check(taken == step.taken, "event %d: taken %v", step.ev, taken),
			check(m.State() == step.want, "event %d: state %d", step.ev, m.State()),
		); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "actions: %v\n", log)

	return check(len(log) == 3 && log[2] == "stop", "action log: %v", log)
}

func runFrameParser(w io.Writer) error {
	p := embedded.NewFrameParser()

	cs := embedded.Checksum("SET", "42")
	stream := fmt.Sprintf("noise$SET,42*%02X\n$BAD,1*00\n$GET,*%02X\n",
		cs, embedded.Checksum("GET", ""))

	sentences := p.FeedAll([]byte(stream))
	for _, s := range sentences {
		fmt.Fprintf(w, "sentence: cmd=%q data=%q\n", s.Cmd, s.Data)
	}
	fmt.Fprintf(w, "%d accepted, %d discarded\n", p.Sentences, p.Errors)

	return firstErr(
		check(len(sentences) == 2, "got %d sentences, want 2", len(sentences)),
		check(sentences[0].Cmd == "SET" && sentences[0].Data == "42",
			"first sentence: %+v", sentences[0]),
		check(sentences[1].Cmd == "GET" && sentences[1].Data == "",
			"second sentence: %+v", sentences[1]),
		check(p.Errors == 1, "bad checksum not counted: %d", p.Errors),
	)
}
