package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ehsandastani/textscan/internal/model"
)

// fakeStep is a configurable step for pipeline execution tests.
type fakeStep struct {
	name string
	err  error
	ran  *[]string
}

func (s *fakeStep) Name() string {
	return s.name
}

func (s *fakeStep) Do(_ context.Context, _ *model.TextReport) error {
	if s.ran != nil {
		*s.ran = append(*s.ran, s.name)
	}
	return s.err
}

// TestPipelineExecute tests sequential step execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes steps in order", func(t *testing.T) {
		t.Parallel()

		var ran []string
		p := New()
		p.AddSteps(
			&fakeStep{name: "first", ran: &ran},
			&fakeStep{name: "second", ran: &ran},
			&fakeStep{name: "third", ran: &ran},
		)

		report := model.NewTextReport("input.txt")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"first", "second", "third"}
		if !reflect.DeepEqual(ran, want) {
			t.Errorf("expected order %v, got %v", want, ran)
		}
		if !reflect.DeepEqual(report.PerformedSteps, want) {
			t.Errorf("expected performed steps %v, got %v", want, report.PerformedSteps)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		var ran []string
		wantErr := errors.New("load failed")
		p := New()
		p.AddSteps(
			&fakeStep{name: "first", err: wantErr, ran: &ran},
			&fakeStep{name: "second", ran: &ran},
		)

		report := model.NewTextReport("input.txt")
		err := p.Execute(context.Background(), report)

		if !errors.Is(err, wantErr) {
			t.Errorf("expected %v, got %v", wantErr, err)
		}
		if len(ran) != 1 {
			t.Errorf("expected only first step to run, got %v", ran)
		}
		if report.Error == nil {
			t.Error("expected error recorded in report")
		}
		if report.ErrorMessage != wantErr.Error() {
			t.Errorf("expected error message %q, got %q", wantErr.Error(), report.ErrorMessage)
		}
	})

	t.Run("continues on error when configured", func(t *testing.T) {
		t.Parallel()

		var ran []string
		p := New(WithContinueOnError(true))
		p.AddSteps(
			&fakeStep{name: "first", err: errors.New("boom"), ran: &ran},
			&fakeStep{name: "second", ran: &ran},
		)

		report := model.NewTextReport("input.txt")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(ran) != 2 {
			t.Errorf("expected both steps to run, got %v", ran)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		var ran []string
		p := New()
		p.AddStep(&fakeStep{name: "never", ran: &ran})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		report := model.NewTextReport("input.txt")
		err := p.Execute(ctx, report)

		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if len(ran) != 0 {
			t.Errorf("expected no steps to run, got %v", ran)
		}
	})

	t.Run("reports step count and names", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(&fakeStep{name: "a"}, &fakeStep{name: "b"})

		if p.StepCount() != 2 {
			t.Errorf("expected 2 steps, got %d", p.StepCount())
		}
		if !reflect.DeepEqual(p.StepNames(), []string{"a", "b"}) {
			t.Errorf("unexpected step names: %v", p.StepNames())
		}
	})
}
