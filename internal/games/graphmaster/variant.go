package graphmaster

import "github.com/vovakirdan/graph-master/internal/quiz"

// Variant is a registered session type: which question kinds it asks.
type Variant struct {
	ID    string
	Title string
	Kinds []quiz.Kind
}

var variants = []Variant{
	{ID: "points", Title: "Plotting Points", Kinds: []quiz.Kind{quiz.KindPlot}},
	{ID: "gradient", Title: "Gradients", Kinds: []quiz.Kind{quiz.KindGradient}},
	{ID: "equations", Title: "Line Equations", Kinds: []quiz.Kind{quiz.KindEquation, quiz.KindTable}},
	{ID: "graphing", Title: "Graphing Lines", Kinds: []quiz.Kind{quiz.KindGraph}},
	{ID: "slider", Title: "Line Slider", Kinds: []quiz.Kind{quiz.KindMatch}},
	{ID: "mixed", Title: "Mixed Practice", Kinds: quiz.Kinds()},
}

// Variants returns every session type in menu order.
func Variants() []Variant {
	return append([]Variant(nil), variants...)
}

// LookupVariant finds a variant by ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// KindFor returns the kind asked at level n (1-based). Variants with
// several kinds cycle through them.
func (v Variant) KindFor(n int) quiz.Kind {
	if len(v.Kinds) == 0 {
		return quiz.KindPlot
	}
	if n < 1 {
		n = 1
	}
	return v.Kinds[(n-1)%len(v.Kinds)]
}
