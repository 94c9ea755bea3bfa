package model

// FetchStatus represents the status of an asynchronous fetch or submission
type FetchStatus string

const (
	// FetchStatusIdle means no request has been issued yet
	FetchStatusIdle FetchStatus = "idle"

	// FetchStatusLoading means a request is in flight
	FetchStatusLoading FetchStatus = "loading"

	// FetchStatusSuccess means the last request produced data
	FetchStatusSuccess FetchStatus = "success"

	// FetchStatusError means the last request failed
	FetchStatusError FetchStatus = "error"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true while a request is in flight
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusLoading
}

// IsFinished returns true if the request settled (success or error)
func (fs FetchStatus) IsFinished() bool {
	return fs == FetchStatusSuccess || fs == FetchStatusError
}
