package flu_test

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/KasperOmsK/flu"
)

type Item struct {
	ID string
}

type Event struct {
	Type  string
	Items []Item
}

// Example demonstrates a pipeline that parses items from (fake) event files.
func Example() {
	lines := flu.From(IterateFile("events-2023.log"))

	// Map applies transformations; any func(In) Out can be reused as is.
	trimmed := flu.Map(lines, strings.TrimSpace)

	events := flu.Map(trimmed, ParseEvent)

	purchases := events.Filter(func(e Event) bool {
		return e.Type == "purchase"
	})

	items := flu.FlatMap(purchases, func(e Event) []Item {
		return e.Items
	})

	valid := items.Filter(func(it Item) bool {
		return it.ID != ""
	})

	batches := flu.Chunk(valid, 2)

	batchCount := 0
	for batch := range batches.Values() {
		fmt.Println("batch:", batchCount)
		ProcessBatch(batch)
		batchCount++
	}

	// Output:
	// batch: 0
	// {1001}
	// {1002}
	// batch: 1
	// {1003}
	// {1004}
	// batch: 2
	// {1005}
}

func ExampleInnerJoin() {
	type user struct {
		ID   int
		Name string
	}
	type order struct {
		UserID int
		Total  int
	}

	users := flu.Of(user{1, "ann"}, user{2, "bob"}, user{3, "cid"})
	orders := slices.Values([]order{{1, 30}, {3, 5}, {1, 12}, {4, 99}})

	joined := flu.InnerJoin(users, orders,
		func(u user) int { return u.ID },
		func(o order) int { return o.UserID })

	for p := range joined.Values() {
		fmt.Println(p.A.Name, p.B.Total)
	}

	// Output:
	// ann 30
	// ann 12
	// cid 5
}

func ExampleLeftJoin() {
	left := flu.Of("apple", "banana", "cherry")
	right := slices.Values([]string{"avocado", "blueberry", "apricot"})

	initial := func(s string) byte { return s[0] }

	for p := range flu.LeftJoin(left, right, initial, initial).Values() {
		fmt.Println(p.A, p.B.OrElse("-"))
	}

	// Output:
	// apple avocado
	// apple apricot
	// banana blueberry
	// cherry -
}

func ExampleWindow() {
	readings := flu.Of(3.0, 5.0, 4.0, 8.0)

	averages := flu.Map(flu.Window(readings, 2), func(w []float64) float64 {
		return (w[0] + w[1]) / 2
	})

	fmt.Println(averages.Collect())

	// Output:
	// [4 4.5 6]
}

func ExampleGroupBy() {
	words := flu.Of("go", "rust", "zig", "java", "c", "lua")

	for g := range flu.GroupBy(words, func(w string) int { return len(w) }).Values() {
		fmt.Println(g.Key, g.Items)
	}

	// Output:
	// 2 [go]
	// 4 [rust java]
	// 3 [zig lua]
	// 1 [c]
}

func ExamplePipe_Take() {
	squares := flu.Map(flu.From(naturals), func(v int) int { return v * v })

	fmt.Println(squares.Skip(1).Take(4).Collect())

	// Output:
	// [1 4 9 16]
}

func ExampleFold() {
	csv := flu.Fold(flu.Of("a", "b", "c"), "", func(acc, s string) string {
		if acc == "" {
			return s
		}
		return acc + "," + s
	})

	fmt.Println(csv)

	// Output:
	// a,b,c
}

func IterateFile(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var lines []string

		switch path {
		case "events-2023.log":
			lines = []string{
				"purchase:1001,1002,1003",
				"refund:2001",
				"  purchase:1004,1005 ",
				"purchase:",
				"invalid-line-without-colon",
			}
		default:
			lines = []string{}
		}

		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

// ParseEvent never fails: malformed lines become events with an empty type.
func ParseEvent(line string) Event {
	eventType, rawItems, ok := strings.Cut(line, ":")
	if !ok {
		return Event{}
	}

	var items []Item
	for _, id := range strings.Split(rawItems, ",") {
		items = append(items, Item{
			ID: strings.TrimSpace(id),
		})
	}

	return Event{
		Type:  strings.TrimSpace(eventType),
		Items: items,
	}
}

func ProcessBatch(items []Item) {
	for _, it := range items {
		fmt.Println(it)
	}
}
