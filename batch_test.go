package cliarg

import "testing"

func TestBatchParsePreservesOrderAndSplitsSuccessFromError(t *testing.T) {
	app := NewApp("app")
	app.Arg("name").Long("name").TakesValue().Required()

	argvs := [][]string{
		{"app", "--name", "alice"},
		{"app"},
		{"app", "--name", "carol"},
	}

	outcomes := app.BatchParse(argvs, 2)
	if len(outcomes) != 3 {
		t.Fatalf("BatchParse() returned %d outcomes, want 3", len(outcomes))
	}

	for i, o := range outcomes {
		if o.Index != i {
			t.Errorf("outcomes[%d].Index = %d, want %d", i, o.Index, i)
		}
	}

	if outcomes[0].Err != nil {
		t.Errorf("outcomes[0].Err = %v, want nil", outcomes[0].Err)
	}
	got, _ := outcomes[0].Matches.Value("name")
	if got != "alice" {
		t.Errorf("outcomes[0] name = %q, want \"alice\"", got)
	}

	if outcomes[1].Err == nil {
		t.Error("outcomes[1].Err = nil, want a MissingRequiredArgument error")
	}
	if outcomes[1].Matches != nil {
		t.Error("outcomes[1].Matches should be nil on failure")
	}

	if outcomes[2].Err != nil {
		t.Errorf("outcomes[2].Err = %v, want nil", outcomes[2].Err)
	}
	got, _ = outcomes[2].Matches.Value("name")
	if got != "carol" {
		t.Errorf("outcomes[2] name = %q, want \"carol\"", got)
	}
}

func TestBatchParseSharesOneFrozenAppAcrossWorkers(t *testing.T) {
	app := NewApp("app")
	app.Arg("n").Long("n").TakesValue()

	argvs := make([][]string, 20)
	for i := range argvs {
		argvs[i] = []string{"app", "--n", "x"}
	}

	outcomes := app.BatchParse(argvs, 4)
	for i, o := range outcomes {
		if o.Err != nil {
			t.Fatalf("outcomes[%d].Err = %v, want nil", i, o.Err)
		}
		if v, _ := o.Matches.Value("n"); v != "x" {
			t.Errorf("outcomes[%d] value = %q, want \"x\"", i, v)
		}
	}
}

func TestBatchParseEmptyInput(t *testing.T) {
	app := NewApp("app")
	outcomes := app.BatchParse(nil, 2)
	if len(outcomes) != 0 {
		t.Errorf("BatchParse(nil) returned %d outcomes, want 0", len(outcomes))
	}
}

func TestBatchParseZeroWorkersDefaultsToNumCPU(t *testing.T) {
	app := NewApp("app")
	app.Arg("n").Long("n").TakesValue()

	outcomes := app.BatchParse([][]string{{"app", "--n", "x"}}, 0)
	if len(outcomes) != 1 || outcomes[0].Err != nil {
		t.Fatalf("BatchParse(workers=0) = %+v, want one successful outcome", outcomes)
	}
}
