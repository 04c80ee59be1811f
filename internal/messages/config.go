package messages

// Config messages for the installer store.
const (
	// ConfigReadFailedFmt formats config file read errors.
	ConfigReadFailedFmt = "failed to read config %s: %w"
	// ConfigInvalidFmt formats TOML parse errors; wrapped with config.ErrMalformed.
	ConfigInvalidFmt   = "invalid config %s: %w"
	ConfigWriteFmt     = "write config %s: %w"
	ConfigPathRequired = "config path is required"

	// ConfigTokenConflictFmt formats duplicate installer token errors.
	ConfigTokenConflictFmt = "installer token %s is already registered"
	// ConfigPortConflictFmt formats duplicate run port errors.
	ConfigPortConflictFmt = "run port %d is already bound to installer %s"

	// HostIDUnavailable indicates no stable hardware address could be derived.
	HostIDUnavailable = "no network interface with a hardware address is available"
	HostIDListFmt     = "list network interfaces: %w"
)
