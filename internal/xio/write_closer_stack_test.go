package xio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
)

type recordCloser struct {
	bytes.Buffer
	name   string
	order  *[]string
	err    error
	closed bool
}

func (r *recordCloser) Close() error {
	r.closed = true
	*r.order = append(*r.order, r.name)
	return r.err
}

func TestWriteCloserStackOrder(t *testing.T) {
	var order []string
	bottom := &recordCloser{name: "bottom", order: &order}
	top := &recordCloser{name: "top", order: &order}

	s := NewWriteCloserStack()
	s.Push(bottom)
	s.Push(top)
	if _, err := io.WriteString(s, "0110"); err != nil {
		t.Fatalf("WriteString error %s", err)
	}
	if got := top.String(); got != "0110" {
		t.Fatalf("top received %q; want %q", got, "0110")
	}
	if bottom.Len() != 0 {
		t.Fatalf("bottom received %q; want nothing", bottom.String())
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	if len(order) != 2 || order[0] != "top" || order[1] != "bottom" {
		t.Fatalf("close order %v; want [top bottom]", order)
	}
	if s.Stack != nil {
		t.Fatalf("stack not cleared")
	}
}

func TestWriteCloserStackErrors(t *testing.T) {
	var order []string
	errA := errors.New("a")
	s := NewWriteCloserStack()
	s.Push(&recordCloser{name: "a", order: &order, err: errA})
	s.Push(&recordCloser{name: "b", order: &order})
	err := s.Close()
	if !errors.Is(err, errA) {
		t.Fatalf("Close returned %v; want it to wrap %v", err, errA)
	}
}

func TestPushFunc(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	s := NewWriteCloserStack()
	s.PushFunc(bw, bw.Flush)
	if _, err := io.WriteString(s, "10"); err != nil {
		t.Fatalf("WriteString error %s", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("data reached buffer before flush")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	if got := buf.String(); got != "10" {
		t.Fatalf("buffer %q; want %q", got, "10")
	}
}
