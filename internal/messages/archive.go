package messages

// Archive messages for extraction.
const (
	// ArchiveOpenErrFmt formats archive open/decompress errors.
	ArchiveOpenErrFmt = "open archive %s: %w"
	// ArchiveInsecureEntryFmt flags entries that would escape the target directory.
	ArchiveInsecureEntryFmt = "archive %s: insecure entry name %q"
	ArchiveCreateDirErrFmt  = "create directory %s: %w"
	ArchiveCopyErrFmt       = "copy archive %s to %s: %w"
	ArchiveWriteEntryErrFmt = "write entry %s: %w"
	ArchiveChmodErrFmt      = "set permissions on %s: %w"
	ArchiveRemoveCopyErrFmt = "remove archive copy %s: %w"
)
