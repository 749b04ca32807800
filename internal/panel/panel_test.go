package panel

import (
	"errors"
	"testing"

	"pcp360/internal/api"
	"pcp360/internal/demo"
)

type fakePayload struct {
	Code  string
	Items []string
}

func TestController_StartsIdle(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{})
	if got := c.State().Phase; got != Idle {
		t.Fatalf("expected Idle, got %v", got)
	}
}

func TestController_TriggerMovesToLoadingSynchronously(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{})
	tk, ok := c.Trigger("")
	if !ok {
		t.Fatal("expected trigger to be accepted")
	}
	if tk.Seq == 0 {
		t.Fatal("expected non-zero ticket")
	}
	if got := c.State().Phase; got != Loading {
		t.Fatalf("expected Loading, got %v", got)
	}
}

func TestController_ValidationFailureSkipsFetch(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{RequiresCode: true})
	tk, ok := c.Trigger("not valid!")
	if ok {
		t.Fatal("expected trigger rejection")
	}
	if tk != (Ticket{}) {
		t.Fatalf("expected zero ticket, got %+v", tk)
	}
	st := c.State()
	if st.Phase != Error {
		t.Fatalf("expected Error, got %v", st.Phase)
	}
	if st.Message != "invalid material code" {
		t.Fatalf("unexpected message: %q", st.Message)
	}
}

func TestController_TicketCarriesTrimmedCode(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{RequiresCode: true})
	tk, ok := c.Trigger("  4011835-AA ")
	if !ok {
		t.Fatal("expected trigger to be accepted")
	}
	if tk.Code != "4011835-AA" {
		t.Fatalf("expected trimmed code, got %q", tk.Code)
	}
}

func TestController_SuccessAndEmptyClassification(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{
		Empty: func(p fakePayload) bool { return len(p.Items) == 0 },
	})

	tk, _ := c.Trigger("")
	st := c.Resolve(tk, fakePayload{Items: []string{"a"}}, nil)
	if st.Phase != Success {
		t.Fatalf("expected Success, got %v", st.Phase)
	}

	tk, _ = c.Trigger("")
	st = c.Resolve(tk, fakePayload{}, nil)
	if st.Phase != Empty {
		t.Fatalf("expected Empty, got %v", st.Phase)
	}
}

func TestController_ErrorWithoutFallback(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{})
	tk, _ := c.Trigger("")
	st := c.Resolve(tk, fakePayload{}, errors.New("backend returned 500"))
	if st.Phase != Error {
		t.Fatalf("expected Error, got %v", st.Phase)
	}
	if st.Message != "backend returned 500" {
		t.Fatalf("unexpected message: %q", st.Message)
	}
}

// The same simulated failure must yield Success(demo) for a
// fallback-capable panel and Error for every other panel.
func TestController_FallbackAsymmetry(t *testing.T) {
	failure := &api.Error{Kind: api.KindHTTPStatus, Status: 503}

	pegging := New[*api.PeggingLite](Options[*api.PeggingLite]{
		RequiresCode: true,
		Fallback: func(code string) (*api.PeggingLite, bool) {
			p := demo.Pegging(code)
			return p, p != nil
		},
	})
	tk, ok := pegging.Trigger("4011835-AA")
	if !ok {
		t.Fatal("expected trigger to be accepted")
	}
	st := pegging.Resolve(tk, nil, failure)
	if st.Phase != Success {
		t.Fatalf("pegging: expected Success(demo), got %v (%q)", st.Phase, st.Message)
	}
	if !st.Demo {
		t.Fatal("pegging: expected demo marker")
	}
	if st.Payload == nil || st.Payload.Material != "4011835-AA" {
		t.Fatalf("pegging: unexpected payload %+v", st.Payload)
	}

	capacity := New[*api.CapacityIA](Options[*api.CapacityIA]{})
	ctk, _ := capacity.Trigger("")
	cst := capacity.Resolve(ctk, nil, failure)
	if cst.Phase != Error {
		t.Fatalf("capacity: expected Error, got %v", cst.Phase)
	}
	if cst.Demo {
		t.Fatal("capacity: unexpected demo marker")
	}
}

func TestController_FallbackNilStillErrors(t *testing.T) {
	c := New[*api.PeggingLite](Options[*api.PeggingLite]{
		Fallback: func(code string) (*api.PeggingLite, bool) {
			p := demo.Pegging(code)
			return p, p != nil
		},
	})
	// No RequiresCode, so a blank code reaches the fallback and is refused.
	tk, _ := c.Trigger("")
	st := c.Resolve(tk, nil, errors.New("boom"))
	if st.Phase != Error {
		t.Fatalf("expected Error when fallback declines, got %v", st.Phase)
	}
}

// R1 then R2 issued before R1 resolves: R1's late arrival must be dropped.
func TestController_StaleResultDropped(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{RequiresCode: true})

	t1, _ := c.Trigger("A")
	t2, _ := c.Trigger("B")

	// R2 resolves first.
	st := c.Resolve(t2, fakePayload{Code: "B"}, nil)
	if st.Phase != Success || st.Payload.Code != "B" {
		t.Fatalf("expected Success(B), got %v %+v", st.Phase, st.Payload)
	}

	// R1 arrives late; it must not touch the state — success or failure.
	st = c.Resolve(t1, fakePayload{Code: "A"}, nil)
	if st.Payload.Code != "B" {
		t.Fatalf("stale success applied: %+v", st.Payload)
	}
	st = c.Resolve(t1, fakePayload{}, errors.New("late failure"))
	if st.Phase != Success || st.Payload.Code != "B" {
		t.Fatalf("stale failure applied: %v %+v", st.Phase, st.Payload)
	}
}

func TestController_StaleResultDroppedWhileLoading(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{RequiresCode: true})

	t1, _ := c.Trigger("A")
	if _, ok := c.Trigger("B"); !ok {
		t.Fatal("expected second trigger to be accepted")
	}

	// R1 resolves while R2 is still in flight: panel must stay Loading.
	st := c.Resolve(t1, fakePayload{Code: "A"}, nil)
	if st.Phase != Loading {
		t.Fatalf("expected Loading, got %v", st.Phase)
	}
}

func TestController_FailedValidationSupersedesInFlight(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{RequiresCode: true})

	t1, _ := c.Trigger("A")
	if _, ok := c.Trigger("!!"); ok {
		t.Fatal("expected validation failure")
	}

	// The in-flight request was superseded by the failed trigger; its result
	// must not overwrite the validation error.
	st := c.Resolve(t1, fakePayload{Code: "A"}, nil)
	if st.Phase != Error || st.Message != "invalid material code" {
		t.Fatalf("expected validation error to stick, got %v %q", st.Phase, st.Message)
	}
}

func TestController_TerminalStateRetriggers(t *testing.T) {
	c := New[fakePayload](Options[fakePayload]{})
	tk, _ := c.Trigger("")
	c.Resolve(tk, fakePayload{}, errors.New("down"))

	if _, ok := c.Trigger(""); !ok {
		t.Fatal("expected re-trigger from Error")
	}
	if got := c.State().Phase; got != Loading {
		t.Fatalf("expected Loading after re-trigger, got %v", got)
	}
}

func TestPhase_String(t *testing.T) {
	for p, want := range map[Phase]string{
		Idle: "idle", Loading: "loading", Success: "success",
		Empty: "empty", Error: "error", Phase(99): "unknown",
	} {
		if got := p.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", p, got, want)
		}
	}
}
