package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"starmap/pkg/engine/input"
	"starmap/pkg/engine/layout"
	"starmap/pkg/game/config"
	"starmap/pkg/game/devtools"
	"starmap/pkg/game/renderer"
	ebitenrenderer "starmap/pkg/game/renderer/ebiten"
	"starmap/pkg/game/state"
)

func initLogging(verbose, trace bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	switch {
	case trace:
		log.SetLevel(log.TraceLevel)
	case verbose:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func initGettext(locale string) {
	gotext.Configure("locales", locale, "default")
	log.WithField("locale", locale).Debug("locale configured")
}

// buildGame creates the demo empire shown on the map screen
func buildGame() *state.Game {
	g := state.NewGame()
	g.Colonies.Items = []string{
		"New Terra",
		"Kepler Station",
		"Vega Outpost",
		"Rigel Mining Co.",
	}
	g.Equipment.Items = []string{
		"Scout",
		"Frigate",
		"Colony Ship",
		"Spy Satellite",
		"Hubble II",
	}
	g.AddMessage(gotext.Get("Welcome, commander."))
	return g
}

func run() error {
	mapPath := flag.String("map", "", "map image (PNG or JPEG); empty generates a starfield")
	width := flag.Int("width", 0, "window width (default from preferences)")
	height := flag.Int("height", 0, "window height (default from preferences)")
	locale := flag.String("locale", "", "UI locale (default from preferences)")
	prefsPath := flag.String("prefs", "", "preferences file (default in the user config dir)")
	dumpLayout := flag.Bool("dump-layout", false, "print the layout table and exit without opening a window")
	listBindings := flag.Bool("list-bindings", false, "print the key bindings and exit")
	var binds []string
	flag.Func("bind", `rebind an action and save it, e.g. -bind "Toggle Radars=v" (repeatable)`, func(s string) error {
		if !strings.Contains(s, "=") {
			return fmt.Errorf("want Action=key, got %q", s)
		}
		binds = append(binds, s)
		return nil
	})
	verbose := flag.Bool("v", false, "debug logging")
	trace := flag.Bool("vv", false, "trace logging")
	flag.Parse()

	initLogging(*verbose, *trace)

	path := *prefsPath
	if path == "" {
		path = config.DefaultPath()
	}
	prefs, err := config.Load(path)
	if err != nil {
		return err
	}

	if *locale != "" {
		if err := prefs.SetLocale(*locale); err != nil {
			log.WithError(err).Warn("could not save preferences")
		}
	}
	initGettext(prefs.Locale)

	for _, b := range binds {
		action, code, _ := strings.Cut(b, "=")
		if _, ok := input.ActionByName(action); !ok {
			return fmt.Errorf("unknown action %q", action)
		}
		if err := prefs.SetKeyBinding(strings.TrimSpace(action), strings.TrimSpace(code)); err != nil {
			log.WithError(err).Warn("could not save preferences")
		}
	}
	if err := input.ApplyBindings(prefs.Bindings()); err != nil {
		log.WithError(err).Warn("ignoring custom key bindings")
	}

	if *listBindings {
		devtools.WriteBindings(os.Stdout)
		return nil
	}

	w, h := *width, *height
	if w <= 0 || h <= 0 {
		w, h = prefs.WindowWidth, prefs.WindowHeight
	}

	if *dumpLayout {
		devtools.PrintLayout(layout.Compute(w, h, ebitenrenderer.Chrome(), layout.DefaultMetrics, layout.AllSatellites))
		return nil
	}

	host, err := ebitenrenderer.New(ebitenrenderer.Options{
		MapPath: *mapPath,
		Seed:    time.Now().UnixNano(),
		Width:   w,
		Height:  h,
		Prefs:   prefs,
		Game:    buildGame(),
	})
	if err != nil {
		return err
	}
	renderer.SetRenderer(host)
	return renderer.Run()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starmap: %v\n", err)
		os.Exit(1)
	}
}
