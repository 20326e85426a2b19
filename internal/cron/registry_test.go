package cron

import (
	"context"
	"testing"
)

type namedJob string

func (n namedJob) Name() string              { return string(n) }
func (n namedJob) Run(context.Context) error { return nil }

func TestRegistryKeepsOrderAndSkipsNil(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(namedJob("tracking"), nil, namedJob("cleanup"))
	registry.Register(nil)
	registry.Register(namedJob("extra"))

	jobs := registry.Jobs()
	want := []string{"tracking", "cleanup", "extra"}
	if len(jobs) != len(want) {
		t.Fatalf("expected %d jobs, got %d", len(want), len(jobs))
	}
	for i, name := range want {
		if jobs[i].Name() != name {
			t.Fatalf("job %d = %q, want %q", i, jobs[i].Name(), name)
		}
	}
}

func TestRegistryJobsReturnsCopy(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(namedJob("only"))
	registry.Jobs()[0] = nil
	if registry.Jobs()[0] == nil {
		t.Fatal("mutating the returned slice must not touch the registry")
	}
}
