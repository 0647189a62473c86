package dom

import (
	"reflect"
	"testing"

	"github.com/daryltucker/headway-lab/internal/view"
)

func TestPageLookup(t *testing.T) {
	p := NewPage("a", "b")

	if _, ok := p.ElementByID("missing"); ok {
		t.Fatal("missing element reported present")
	}
	el, ok := p.ElementByID("a")
	if !ok {
		t.Fatal("element a not found")
	}
	el.SetValue("42")
	el.SetText("label")
	if p.Value("a") != "42" || p.Text("a") != "label" {
		t.Fatalf("value/text = %q/%q", p.Value("a"), p.Text("a"))
	}

	if got := p.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("ids = %v", got)
	}

	p.Remove("b")
	if p.Node("b") != nil {
		t.Fatal("b still present")
	}
	if p.Set("b", "1") {
		t.Fatal("Set on removed element succeeded")
	}
}

func TestPageDispatchOrder(t *testing.T) {
	p := NewPage("btn")
	var calls []string
	n := p.Node("btn")
	n.On(view.EventClick, func() { calls = append(calls, "first") })
	n.On(view.EventClick, func() { calls = append(calls, "second") })
	n.On(view.EventInput, func() { calls = append(calls, "input") })

	if !p.Dispatch("btn", view.EventClick) {
		t.Fatal("dispatch failed")
	}
	if !reflect.DeepEqual(calls, []string{"first", "second"}) {
		t.Fatalf("calls = %v", calls)
	}
	if p.Dispatch("nope", view.EventClick) {
		t.Fatal("dispatch on unknown id succeeded")
	}
	if n.Listeners(view.EventInput) != 1 {
		t.Fatalf("input listeners = %d", n.Listeners(view.EventInput))
	}
}

func TestAddIsIdempotent(t *testing.T) {
	p := NewPage()
	a := p.Add("x")
	a.SetValue("1")
	if b := p.Add("x"); b != a || b.Value() != "1" {
		t.Fatal("Add replaced an existing node")
	}
}
