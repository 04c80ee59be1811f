package messages

// Fetch messages for artifact downloads.
const (
	// FetchCreateDirErrFmt formats cache directory creation errors.
	FetchCreateDirErrFmt = "create artifact directory %s: %w"
	// FetchRequestErrFmt formats request construction errors.
	FetchRequestErrFmt = "build download request for %s %s: %w"
	// FetchTransportErrFmt formats network-level download failures.
	FetchTransportErrFmt = "download %s %s: %w"
	// FetchStatusErrFmt formats non-2xx download responses.
	FetchStatusErrFmt = "download %s %s: unexpected status %d"
	// FetchWriteErrFmt formats artifact write failures.
	FetchWriteErrFmt = "write artifact %s: %w"
)
