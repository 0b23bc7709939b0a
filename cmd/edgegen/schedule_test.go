package main

import "testing"

func TestGeneratorCyclesBursts(t *testing.T) {
	var g generator
	want := []uint32{1, 2, 3, 5, 1}
	for i, w := range want {
		if n := g.next(); n != w {
			t.Fatalf("burst %d: got %d want %d", i, n, w)
		}
	}
	if g.total != 12 {
		t.Fatalf("total %d", g.total)
	}
	if g.expectedLED() {
		t.Fatal("even pulse count should leave the LED off")
	}
	g.next() // 2 -> 14
	g.next() // 3 -> 17
	if !g.expectedLED() {
		t.Fatal("odd pulse count should leave the LED on")
	}
}

func TestAppendLine(t *testing.T) {
	if got := string(appendLine(nil, 17)); got != "P 17\r\n" {
		t.Fatalf("got %q", got)
	}
}
