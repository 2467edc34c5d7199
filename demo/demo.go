// Package demo walks through every container of the module
// and renders what each operation produced.
package demo

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/eaugeas/dstruct/container/interval"
	"github.com/eaugeas/dstruct/container/list"
	"github.com/eaugeas/dstruct/container/queue"
	"github.com/eaugeas/dstruct/container/stack"
	"github.com/eaugeas/dstruct/container/tree"
	"github.com/eaugeas/dstruct/expr"
	"github.com/eaugeas/dstruct/logs"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

// Section is a titled list of results
type Section struct {
	Title string
	Rows  [][2]string
}

func (s *Section) add(key string, value interface{}) {
	s.Rows = append(s.Rows, [2]string{key, fmt.Sprint(value)})
}

// Report holds the results of a demo run
type Report struct {
	Sections []Section
}

// Run exercises the containers with opts, logs every step
// and writes the rendered report to w
func Run(ctx context.Context, opts Options, logger logs.Logger, w io.Writer) (*Report, error) {
	report := &Report{}

	logger.Debug(ctx, "running demo", logs.MapFields{
		"values": opts.Values,
		"remove": opts.Remove,
		"search": opts.Search,
	})

	report.Sections = append(report.Sections,
		stackSection(),
		queueSection(),
		listSection(),
		treeSection(ctx, opts, logger),
		intervalSection(),
	)

	exprs, err := exprSection(opts)
	if err != nil {
		logger.Warn(ctx, "failed to evaluate postfix expression", logs.MapFields{
			"expression": opts.Postfix,
			"err":        err.Error(),
		})
		return nil, errors.Wrap(err, "postfix evaluation failed")
	}
	report.Sections = append(report.Sections, exprs)

	if err := report.Render(w); err != nil {
		return nil, err
	}

	logger.Info(ctx, "demo completed", logs.MapFields{"sections": len(report.Sections)})
	return report, nil
}

// Render writes every section of the report as a table
func (r *Report) Render(w io.Writer) error {
	for _, section := range r.Sections {
		data := pterm.TableData{{"Operation", "Result"}}
		for _, row := range section.Rows {
			data = append(data, []string{row[0], row[1]})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrapf(err, "failed to render section %s", section.Title)
		}

		if _, err := fmt.Fprintf(w, "%s\n%s\n", pterm.DefaultSection.Sprint(section.Title), table); err != nil {
			return errors.Wrap(err, "failed to write report")
		}
	}

	return nil
}

// Lookup returns the result of the operation named key in
// the section with the title. It returns false if there is
// no such row
func (r *Report) Lookup(title, key string) (string, bool) {
	section, ok := lo.Find(r.Sections, func(s Section) bool { return s.Title == title })
	if !ok {
		return "", false
	}

	row, ok := lo.Find(section.Rows, func(row [2]string) bool { return row[0] == key })
	return row[1], ok
}

func stackSection() Section {
	section := Section{Title: "Stack"}
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	section.add("size", s.Len())
	top, _ := s.Peek()
	section.add("peek", top)
	popped, _ := s.Pop()
	section.add("pop", popped)
	section.add("after pop", s)
	return section
}

func queueSection() Section {
	section := Section{Title: "Queue"}
	q := queue.New[string]()
	q.Enqueue("first")
	q.Enqueue("second")
	q.Enqueue("third")

	section.add("size", q.Len())
	front, _ := q.Front()
	section.add("front", front)
	dequeued, _ := q.Dequeue()
	section.add("dequeue", dequeued)
	section.add("after dequeue", q)
	return section
}

func listSection() Section {
	section := Section{Title: "Linked List"}
	l := list.New[int]()
	l.Append(10)
	l.Append(20)
	l.Prepend(5)
	// the index is always within bounds here
	_ = l.Insert(1, 15)

	section.add("size", l.Len())
	at, _ := l.Get(2)
	section.add("get 2", at)
	section.add("list", l)
	l.Remove(15)
	section.add("after remove 15", l)
	return section
}

func treeSection(ctx context.Context, opts Options, logger logs.Logger) Section {
	section := Section{Title: "Binary Search Tree"}
	bst := tree.New[int]()

	for _, v := range opts.Values {
		if !bst.Insert(v) {
			logger.Debug(ctx, "duplicate value ignored", logs.MapFields{"value": v})
		}
	}

	section.add("height", bst.Height())
	min, ok := bst.Min()
	section.add("min", optional(min, ok))
	max, ok := bst.Max()
	section.add("max", optional(max, ok))
	for _, v := range opts.Search {
		section.add(fmt.Sprintf("search %d", v), bst.Contains(v))
	}
	section.add("in order", formatValues(bst.InOrder()))
	section.add("pre order", formatValues(bst.PreOrder()))
	section.add("post order", formatValues(bst.PostOrder()))

	for _, v := range opts.Remove {
		if !bst.Remove(v) {
			logger.Debug(ctx, "value to remove not found", logs.MapFields{"value": v})
		}
		section.add(fmt.Sprintf("after remove %d", v), formatValues(bst.InOrder()))
	}

	section.add("tree", bst)
	return section
}

// intervalSection fills the gap between two intervals so
// that the set collapses them into one
func intervalSection() Section {
	section := Section{Title: "Interval Set"}
	set := interval.NewIntSet()
	set.Insert(interval.NewInt(1, 3))
	set.Insert(interval.NewInt(7, 10))
	set.Insert(interval.NewInt(13, 20))

	section.add("set", set)
	set.Insert(interval.NewInt(4, 6))
	section.add("after insert [4, 6]", set)
	section.add("size", set.Len())
	section.add("contains [2, 9]", set.Contains(interval.NewInt(2, 9)))
	section.add("contains [9, 14]", set.Contains(interval.NewInt(9, 14)))
	return section
}

func exprSection(opts Options) (Section, error) {
	section := Section{Title: "Stack Examples"}

	for _, e := range opts.Brackets {
		balanced := "Not Balanced"
		if expr.IsBalanced(e) {
			balanced = "Balanced"
		}
		section.add(fmt.Sprintf("balanced %q", e), balanced)
	}

	section.add(fmt.Sprintf("reverse %q", opts.Reverse), fmt.Sprintf("%q", expr.Reverse(opts.Reverse)))

	if opts.Postfix != "" {
		v, err := expr.EvalPostfix(opts.Postfix)
		if err != nil {
			return section, err
		}
		section.add(fmt.Sprintf("postfix %q", opts.Postfix), v)
	}

	return section, nil
}

func optional[T any](v T, ok bool) string {
	if !ok {
		return "none"
	}

	return fmt.Sprint(v)
}

func formatValues[T any](values []T) string {
	return "[" + strings.Join(lo.Map(values, func(v T, _ int) string { return fmt.Sprint(v) }), ", ") + "]"
}
