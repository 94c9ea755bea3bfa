package model

import (
	"errors"
	"testing"
)

func describe(s State[string]) string {
	return Match(s,
		func() string { return "idle" },
		func() string { return "loading" },
		func(data string) string { return "success:" + data },
		func(err error) string { return "error:" + err.Error() },
	)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		state    State[string]
		expected string
		status   FetchStatus
	}{
		{"nil", nil, "idle", FetchStatusIdle},
		{"idle", Idle[string]{}, "idle", FetchStatusIdle},
		{"loading", Loading[string]{}, "loading", FetchStatusLoading},
		{"success", Success[string]{Data: "Successfully rated"}, "success:Successfully rated", FetchStatusSuccess},
		{"failure", Failure[string]{Err: errors.New("boom")}, "error:boom", FetchStatusError},
	}

	for _, test := range tests {
		if got := describe(test.state); got != test.expected {
			t.Errorf("%s: Match() = %q, expected %q", test.name, got, test.expected)
		}
		if got := StatusOf[string](test.state); got != test.status {
			t.Errorf("%s: StatusOf() = %s, expected %s", test.name, got, test.status)
		}
	}
}

func TestDataOfAndErrOf(t *testing.T) {
	art := &Artwork{Title: "Nighthawks"}

	data, ok := DataOf[*Artwork](Success[*Artwork]{Data: art})
	if !ok || data != art {
		t.Errorf("DataOf(success) = %v, %v; expected artwork, true", data, ok)
	}

	if _, ok := DataOf[*Artwork](Loading[*Artwork]{}); ok {
		t.Error("DataOf(loading) should report false")
	}

	apiErr := &APIError{Status: 404, Label: "Not found", Detail: "The item you requested cannot be found."}
	err := ErrOf[*Artwork](Failure[*Artwork]{Err: apiErr})
	var target *APIError
	if !errors.As(err, &target) || target.Status != 404 {
		t.Errorf("ErrOf(failure) = %v, expected the APIError", err)
	}

	if ErrOf[*Artwork](Success[*Artwork]{Data: art}) != nil {
		t.Error("ErrOf(success) should be nil")
	}
}
