// Command chroma converts a color between any two registered spaces.
//
//	chroma -from html -to lab '#336699'
//	chroma -from hls -to rgb_bytes -swatch 0.6 0.5 1
//	chroma -list
//	chroma -names
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/chroma"
	"github.com/gogpu/chroma/graph"
	"github.com/gogpu/chroma/internal/colorconv"
)

func main() {
	var (
		from    = flag.String("from", "name", "source space")
		to      = flag.String("to", "html", "target space")
		swatch  = flag.Bool("swatch", false, "print a terminal swatch of the color")
		list    = flag.Bool("list", false, "list spaces and exit")
		names   = flag.Bool("names", false, "list CSS color names and exit")
		verbose = flag.Bool("v", false, "log path resolution to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: chroma [flags] components...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("chroma: ")

	if *verbose {
		chroma.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *list {
		printSpaces()
		return
	}
	if *names {
		printNames(os.Stdout)
		return
	}

	source, target := graph.Space(*from), graph.Space(*to)
	shape, ok := chroma.DefaultRegistry().Shape(source)
	if !ok {
		log.Fatalf("unknown space %q (try -list)", source)
	}
	v, err := parseValue(shape, flag.Args())
	if err != nil {
		log.Fatalf("%s: %v", source, err)
	}

	out, err := chroma.Convert(source, target, v)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)

	if *swatch {
		c, err := chroma.From(source, v)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(swatchOf(c))
	}
}

// parseValue reads command line components in the given shape.
func parseValue(shape graph.Shape, args []string) (graph.Value, error) {
	if shape.Kind == graph.KindString {
		if len(args) == 0 {
			return graph.Value{}, errors.New("want a string")
		}
		return graph.Text(strings.Join(args, " ")), nil
	}
	if len(args) != shape.Arity {
		return graph.Value{}, fmt.Errorf("want %d components, got %d", shape.Arity, len(args))
	}
	switch shape.Kind {
	case graph.KindFloat:
		xs := make([]float64, len(args))
		for i, a := range args {
			x, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return graph.Value{}, err
			}
			xs[i] = x
		}
		return graph.Floats(xs...), nil
	case graph.KindInt:
		ns := make([]int, len(args))
		for i, a := range args {
			n, err := strconv.ParseInt(a, 0, 64)
			if err != nil {
				return graph.Value{}, err
			}
			ns[i] = int(n)
		}
		return graph.Ints(ns...), nil
	}
	return graph.Value{}, fmt.Errorf("unsupported shape %v", shape)
}

func swatchOf(c chroma.Color) string {
	fg := lipgloss.Color("#ffffff")
	if c.Lightness() > 0.5 {
		fg = lipgloss.Color("#000000")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.HTML())).
		Foreground(fg).
		Padding(0, 2).
		Render(c.HTML())
}

func printSpaces() {
	r := chroma.DefaultRegistry()
	from := make(map[graph.Space]bool)
	for _, s := range chroma.Constructors() {
		from[s] = true
	}
	to := make(map[graph.Space]bool)
	for _, s := range chroma.Accessors() {
		to[s] = true
	}
	label := lipgloss.NewStyle().Bold(true).Width(10)
	for _, s := range r.Nodes() {
		shape, _ := r.Shape(s)
		var dirs []string
		if from[s] || s == chroma.SpaceRGB {
			dirs = append(dirs, "in")
		}
		if to[s] || s == chroma.SpaceRGB {
			dirs = append(dirs, "out")
		}
		fmt.Printf("%s %-8v %s\n", label.Render(string(s)), shape, strings.Join(dirs, ","))
	}
}

// printNames writes the names accepted by the name space, one per line.
func printNames(w io.Writer) {
	for _, n := range colorconv.Names() {
		fmt.Fprintln(w, n)
	}
}
