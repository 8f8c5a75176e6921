package backend

import (
	"testing"
	"time"
)

func TestBestEffortSend_NeverBlocks(t *testing.T) {
	commands := NewCommandQueue(0)

	done := make(chan int)
	go func() {
		sent := 0
		for i := 0; i < 100; i++ {
			if BestEffortSend[Command](commands, StartContainer{ID: "a"}) {
				sent++
			}
		}
		done <- sent
	}()

	select {
	case sent := <-done:
		if sent != DefaultCapacity {
			t.Fatalf("expected %d accepted sends, got %d", DefaultCapacity, sent)
		}
	case <-time.After(time.Second):
		t.Fatal("BestEffortSend blocked")
	}

	if len(commands) != DefaultCapacity {
		t.Fatalf("expected full queue, got %d", len(commands))
	}
}

func TestTryReceive(t *testing.T) {
	results := NewResultQueue(2)

	if _, ok, closed := TryReceive[Result](results); ok || closed {
		t.Fatalf("expected empty, got ok=%v closed=%v", ok, closed)
	}

	results <- LogText{ContainerID: "a"}
	v, ok, closed := TryReceive[Result](results)
	if !ok || closed {
		t.Fatalf("expected value, got ok=%v closed=%v", ok, closed)
	}
	if lt, isLog := v.(LogText); !isLog || lt.ContainerID != "a" {
		t.Fatalf("unexpected value %+v", v)
	}

	close(results)
	if _, ok, closed := TryReceive[Result](results); ok || !closed {
		t.Fatalf("expected closed, got ok=%v closed=%v", ok, closed)
	}
}

func TestIsMutation(t *testing.T) {
	cases := map[Command]bool{
		ListContainers{}:           false,
		GetLogs{ID: "a"}:           false,
		StartContainer{ID: "a"}:    true,
		StopContainer{ID: "a"}:     true,
		RemoveContainer{ID: "a"}:   true,
		CreateContainer{Name: "x"}: true,
	}
	for cmd, want := range cases {
		if got := IsMutation(cmd); got != want {
			t.Errorf("IsMutation(%T) = %v, want %v", cmd, got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindStopContainer.String() != "stop" {
		t.Errorf("unexpected name %q", KindStopContainer.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("unexpected fallback %q", Kind(99).String())
	}
}
