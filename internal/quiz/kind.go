// Package quiz generates coordinate-geometry questions and checks answers.
//
// Every question belongs to a Kind. The behavior that differs between kinds
// (how many points the player places, which text fields they fill in, whether
// a wrong answer ends the level) lives in one descriptor table instead of
// being spread across the code.
package quiz

import (
	"fmt"
	"strings"
)

// Kind identifies a type of question.
type Kind int

const (
	KindPlot     Kind = iota // place a given point on the grid
	KindGradient             // type the gradient of the line through two points
	KindEquation             // type m and c of the line through two points
	KindTable                // fill in y for three x values
	KindGraph                // plot two points of a given equation
	KindMatch                // tune slope and intercept to match an equation
)

// Descriptor is the per-kind behavior table entry.
type Descriptor struct {
	Kind  Kind
	Name  string
	Title string
	// Fields are the labels of the text inputs; nil when the kind has none.
	// Table questions label their cells from the question's x values.
	Fields []string
	// Points is how many grid points the player places.
	Points int
	// Slider is set when the answer is a slope/intercept pair.
	Slider bool
	// RevealOnFail ends the level on a wrong answer and shows the solution.
	// Kinds without it let the player keep trying.
	RevealOnFail bool
}

var descriptors = [...]Descriptor{
	KindPlot: {
		Kind: KindPlot, Name: "plot", Title: "Plot the point",
		Points: 1, RevealOnFail: true,
	},
	KindGradient: {
		Kind: KindGradient, Name: "gradient", Title: "Find the gradient",
		Fields: []string{"m"}, RevealOnFail: true,
	},
	KindEquation: {
		Kind: KindEquation, Name: "equation", Title: "Write the equation",
		Fields: []string{"m", "c"}, RevealOnFail: true,
	},
	KindTable: {
		Kind: KindTable, Name: "table", Title: "Complete the table",
		Fields: []string{"y₁", "y₂", "y₃"}, RevealOnFail: true,
	},
	KindGraph: {
		Kind: KindGraph, Name: "graph", Title: "Graph the equation",
		Points: 2, RevealOnFail: true,
	},
	KindMatch: {
		Kind: KindMatch, Name: "match", Title: "Match the line",
		Slider: true,
	},
}

// Describe returns the descriptor for k. Unknown kinds describe KindPlot.
func Describe(k Kind) Descriptor {
	if k < 0 || int(k) >= len(descriptors) {
		return descriptors[KindPlot]
	}
	return descriptors[k]
}

// Kinds returns every kind in table order.
func Kinds() []Kind {
	kinds := make([]Kind, len(descriptors))
	for i := range descriptors {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	return Describe(k).Name
}

// ParseKind looks a kind up by name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range descriptors {
		if d.Name == name {
			return d.Kind, nil
		}
	}
	return 0, fmt.Errorf("quiz: unknown kind %q", name)
}
