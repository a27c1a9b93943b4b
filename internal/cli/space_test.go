package cli

import (
	"slices"
	"testing"

	"github.com/matzehuels/punishboard/pkg/errors"
	"github.com/matzehuels/punishboard/pkg/store"
)

func TestSpaceCommands(t *testing.T) {
	st := store.NewMemoryStore()

	steps := []struct {
		args []string
		want []string
	}{
		{[]string{"space", "add", "A", "B", "C", "D"}, []string{"A", "B", "C", "D"}},
		{[]string{"space", "rm", "2"}, []string{"A", "C", "D"}},
		{[]string{"space", "rm", "C"}, []string{"A", "D"}},
		{[]string{"space", "mv", "D", "1"}, []string{"D", "A"}},
		{[]string{"space", "mv", "1", "99"}, []string{"A", "D"}},
		{[]string{"space", "add", "  Tax  "}, []string{"A", "D", "Tax"}},
		{[]string{"space", "clear"}, []string{}},
	}
	for _, step := range steps {
		if err := runCLI(t, st, step.args...); err != nil {
			t.Fatalf("%v: error: %v", step.args, err)
		}
		if got := saved(t, st); !slices.Equal(got, step.want) {
			t.Fatalf("%v: saved = %v, want %v", step.args, got, step.want)
		}
	}
}

func TestSpaceNumericNames(t *testing.T) {
	st := store.NewMemoryStore()

	steps := []struct {
		args []string
		want []string
	}{
		{[]string{"space", "add", "A", "2", "B", "7"}, []string{"A", "2", "B", "7"}},
		{[]string{"space", "rm", "2"}, []string{"A", "B", "7"}},
		{[]string{"space", "rm", "1"}, []string{"B", "7"}},
		{[]string{"space", "mv", "7", "1"}, []string{"7", "B"}},
	}
	for _, step := range steps {
		if err := runCLI(t, st, step.args...); err != nil {
			t.Fatalf("%v: error: %v", step.args, err)
		}
		if got := saved(t, st); !slices.Equal(got, step.want) {
			t.Fatalf("%v: saved = %v, want %v", step.args, got, step.want)
		}
	}
}

func TestSpaceErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"duplicate", []string{"space", "add", "A"}, errors.ErrCodeDuplicateSpaceName},
		{"blank", []string{"space", "add", " "}, errors.ErrCodeEmptySpaceName},
		{"missing", []string{"space", "rm", "Z"}, errors.ErrCodeSpaceNotFound},
		{"bad position", []string{"space", "mv", "A", "zero"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemoryStore()
			if err := runCLI(t, st, "space", "add", "A", "B"); err != nil {
				t.Fatalf("setup: %v", err)
			}
			savesBefore := st.Saves()

			err := runCLI(t, st, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want code %s", err, tt.code)
			}
			if st.Saves() != savesBefore {
				t.Errorf("failed edit saved the list")
			}
		})
	}
}

func TestSpaceAddAllOrNothing(t *testing.T) {
	st := store.NewMemoryStore()
	if err := runCLI(t, st, "space", "add", "A", "B", "A"); err == nil {
		t.Fatal("adding a duplicate should fail")
	}
	if got := saved(t, st); len(got) != 0 {
		t.Errorf("saved = %v, want nothing", got)
	}
}

func TestSpaceList(t *testing.T) {
	st := store.NewMemoryStore()
	if err := runCLI(t, st, "space", "ls"); err != nil {
		t.Fatalf("ls on empty list: %v", err)
	}
	if err := runCLI(t, st, "space", "add", "A"); err != nil {
		t.Fatal(err)
	}
	if err := runCLI(t, st, "space", "ls", "--json"); err != nil {
		t.Fatalf("ls --json: %v", err)
	}
}

func TestCheck(t *testing.T) {
	st := store.NewMemoryStore()

	if err := runCLI(t, st, "check"); !errors.Is(err, errors.ErrCodeEmptySpaceList) {
		t.Errorf("check on empty list = %v, want %s", err, errors.ErrCodeEmptySpaceList)
	}
	if err := runCLI(t, st, "space", "add", "A", "B", "C"); err != nil {
		t.Fatal(err)
	}
	if err := runCLI(t, st, "check"); !errors.Is(err, errors.ErrCodeInvalidSpaceCount) {
		t.Errorf("check on 3 spaces = %v, want %s", err, errors.ErrCodeInvalidSpaceCount)
	}
	if err := runCLI(t, st, "space", "add", "D"); err != nil {
		t.Fatal(err)
	}
	if err := runCLI(t, st, "check"); err != nil {
		t.Errorf("check on 4 spaces = %v, want nil", err)
	}
}
