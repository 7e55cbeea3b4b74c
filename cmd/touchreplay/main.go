// Command touchreplay replays a recorded touch trace through the gesture
// engine and prints the recognized events.
//
// Usage:
//
//	touchreplay -trace recording/testdata/doubleclick.toml
//	touchreplay -trace hold.toml -profile profile/testdata/landscape.toml -v
//
// The rotation comes from -rotation when given, then from the profile, then
// from the trace.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/touch"
	"github.com/gogpu/touch/profile"
	"github.com/gogpu/touch/recording"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	var (
		tracePath   = flag.String("trace", "", "recorded trace (TOML)")
		profilePath = flag.String("profile", "", "gesture profile (TOML); engine defaults when empty")
		rotation    = flag.Int("rotation", -1, "override the profile and trace rotation (0-3)")
		width       = flag.Int("width", touch.DefaultWidth, "display width in portrait")
		height      = flag.Int("height", touch.DefaultHeight, "display height in portrait")
		verbose     = flag.Bool("v", false, "log every poll to stderr")
	)
	flag.Parse()

	if *tracePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		touch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	prof := profile.Default()
	var loaded *profile.Profile
	if *profilePath != "" {
		var err error
		if prof, err = profile.Load(*profilePath); err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		loaded = &prof
	}

	rec, err := recording.Load(*tracePath)
	if err != nil {
		log.Fatalf("Failed to load trace: %v", err)
	}

	rot := pickRotation(*rotation, loaded, rec.Rotation())
	stats := replay(os.Stdout, rec, prof, rot, touch.NewStaticDisplay(*width, *height))
	stats.print(message.NewPrinter(language.English), os.Stdout)
}

// pickRotation resolves the replay rotation. A non-negative flag wins over a
// loaded profile, which wins over the trace.
func pickRotation(flagIndex int, prof *profile.Profile, trace touch.Rotation) touch.Rotation {
	switch {
	case flagIndex >= 0:
		return touch.RotationFromIndex(flagIndex)
	case prof != nil:
		return prof.TouchRotation()
	}
	return trace
}

// summary counts the events of one replay.
type summary struct {
	frames   int
	duration uint32
	polls    int
	counts   map[touch.EventKind]int
	total    int
}

// replay runs rec through a fresh engine configured by prof and writes one
// line per event to w.
func replay(w io.Writer, rec *recording.Recording, prof profile.Profile, rot touch.Rotation, display touch.Display) summary {
	player := rec.Player()
	opts := append(prof.Options(), touch.WithClock(player))
	engine := touch.NewEngine(player, display, opts...)
	engine.SetRotation(rot)

	s := summary{
		frames:   rec.Len(),
		duration: rec.Duration(),
		counts:   make(map[touch.EventKind]int),
	}
	engine.OnEvent(func(ev touch.Event) {
		s.counts[ev.Kind]++
		s.total++
		if ev.Kind == touch.EventWipe {
			fmt.Fprintf(w, "%8d ms  %-11s (%d, %d) %v\n", ev.Time, ev.Kind, ev.Point.X, ev.Point.Y, ev.Direction)
			return
		}
		fmt.Fprintf(w, "%8d ms  %-11s (%d, %d)\n", ev.Time, ev.Kind, ev.Point.X, ev.Point.Y)
	})

	s.polls = player.Run(engine)
	return s
}

var summaryOrder = []touch.EventKind{
	touch.EventDown,
	touch.EventUp,
	touch.EventClick,
	touch.EventDoubleClick,
	touch.EventLong,
	touch.EventDraw,
	touch.EventWipe,
}

func (s summary) print(p *message.Printer, w io.Writer) {
	p.Fprintf(w, "\n%d frames over %d ms, %d polls, %d events\n", s.frames, s.duration, s.polls, s.total)
	for _, k := range summaryOrder {
		if n := s.counts[k]; n > 0 {
			p.Fprintf(w, "  %-11s %d\n", k.String(), n)
		}
	}
}
