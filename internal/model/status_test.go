package model

import "testing"

func TestFetchStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected bool
	}{
		{FetchStatusIdle, false},
		{FetchStatusLoading, true},
		{FetchStatusSuccess, false},
		{FetchStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("FetchStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestFetchStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected bool
	}{
		{FetchStatusIdle, false},
		{FetchStatusLoading, false},
		{FetchStatusSuccess, true},
		{FetchStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("FetchStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestFetchStatus_String(t *testing.T) {
	status := FetchStatusLoading
	expected := "loading"
	result := status.String()

	if result != expected {
		t.Errorf("FetchStatus.String() = %s, expected %s", result, expected)
	}
}
