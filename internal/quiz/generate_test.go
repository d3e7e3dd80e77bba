package quiz

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/graph-master/internal/geom"
)

func TestPairsAreNeverVertical(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := NewGenerator(seed, DefaultLimits())
		for i := 0; i < 100; i++ {
			for _, k := range []Kind{KindGradient, KindEquation} {
				q := g.Next(k)
				if q.A.X == q.B.X {
					t.Fatalf("seed %d: Next(%v) gave vertical pair %v %v", seed, k, q.A, q.B)
				}
				if q.A.X >= 0 || q.B.X <= 0 {
					t.Fatalf("seed %d: pair %v %v not drawn from disjoint x ranges", seed, q.A, q.B)
				}
				if math.IsInf(q.Line.Slope, 0) || math.IsNaN(q.Line.Slope) {
					t.Fatalf("seed %d: slope = %v", seed, q.Line.Slope)
				}
			}
		}
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	a := NewGenerator(42, DefaultLimits())
	b := NewGenerator(42, DefaultLimits())
	for i := 0; i < 30; i++ {
		k := Kinds()[i%len(Kinds())]
		qa, qb := a.Next(k), b.Next(k)
		if !reflect.DeepEqual(qa, qb) {
			t.Fatalf("question %d differs: %+v vs %+v", i, qa, qb)
		}
	}
}

func TestGeneratedQuestionsRespectLimits(t *testing.T) {
	limits := Limits{
		MaxX: 4, MaxY: 3, MaxIntercept: 2, MaxSlope: 2,
		View: geom.Bounds{MinX: -5, MaxX: 5, MinY: -5, MaxY: 5},
	}
	g := NewGenerator(7, limits)

	for i := 0; i < 200; i++ {
		p := g.Next(KindPlot).Target
		if p == (geom.Point{}) || abs(p.X) > 4 || abs(p.Y) > 3 {
			t.Fatalf("plot target %v outside limits", p)
		}

		table := g.Next(KindTable)
		if len(table.Xs) != 3 || !(table.Xs[0] < table.Xs[1] && table.Xs[1] < table.Xs[2]) {
			t.Fatalf("table xs = %v, expected 3 distinct sorted values", table.Xs)
		}
		if table.Line.Slope != math.Trunc(table.Line.Slope) {
			t.Fatalf("table slope %v is not whole", table.Line.Slope)
		}

		graph := g.Next(KindGraph).Line
		if _, ok := graph.Clip(limits.View); !ok || math.Abs(graph.Intercept) > 2 {
			t.Fatalf("graph line %v not visible or intercept too large", graph)
		}

		match := g.Next(KindMatch)
		tenths := match.Line.Slope * 10
		if math.Abs(tenths-math.Round(tenths)) > 1e-9 || math.Abs(match.Line.Slope) > 2 {
			t.Fatalf("match slope %v not on a 0.1 grid within ±2", match.Line.Slope)
		}
		if match.MaxSlope != 2 || match.MaxIntercept != 2 {
			t.Fatalf("match slider range = (%v, %d), expected (2, 2)", match.MaxSlope, match.MaxIntercept)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v, expected %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseKind("nope"); err == nil {
		t.Errorf("ParseKind(\"nope\") error = nil, expected an error")
	}
}

func TestDescriptorTable(t *testing.T) {
	for _, k := range Kinds() {
		d := Describe(k)
		if d.Kind != k {
			t.Errorf("Describe(%v).Kind = %v", k, d.Kind)
		}
		inputs := 0
		if len(d.Fields) > 0 {
			inputs++
		}
		if d.Points > 0 {
			inputs++
		}
		if d.Slider {
			inputs++
		}
		if inputs != 1 {
			t.Errorf("%v has %d input styles, expected exactly 1", k, inputs)
		}
	}
	if Describe(KindMatch).RevealOnFail {
		t.Errorf("match should allow retries")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
