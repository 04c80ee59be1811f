package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "da"
	// RootShort is the short description for the root command.
	RootShort       = "Deploy Agent CLI"
	RootVersionFlag = "Print version and exit"
	RootDirFlag     = "Agent working directory holding config.toml, softwares/, apps/ and prod/"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// RegisterUse is the register command name.
	RegisterUse   = "register"
	RegisterShort = "Register this server with the control plane and install the assigned application"

	RegisterFlagURL   = "Control plane base URL"
	RegisterFlagToken = "Registration token issued by the control plane"
	RegisterFlagPort  = "Run port requested for the new application instance"

	RegisterURLRequired   = "--url is required"
	RegisterTokenRequired = "--token is required"
	RegisterDoneFmt       = "Registered installer %s (%s %s on port %d)\n"

	// UnregisterUse is the unregister command name.
	UnregisterUse   = "unregister"
	UnregisterShort = "Unregister an installed application instance and remove it from the local store"

	UnregisterFlagToken       = "Installer token of the instance to remove"
	UnregisterTokenRequired   = "--token is required"
	UnregisterUnknownTokenFmt = "No installer with token %s is recorded on this server; nothing to remove.\n"
	UnregisterDoneFmt         = "Unregistered installer %s\n"
	UnregisterNotifyFailedFmt = "Warning: failed to notify the control plane for installer %s: %v\n"

	// ListUse is the list command name.
	ListUse   = "list"
	ListShort = "List application instances installed on this server"

	ListEmpty  = "No installers are registered on this server."
	ListHeader = "TOKEN\tAPP\tVERSION\tPORT\tJDK"

	// DirResolveErrFmt formats working directory resolution errors.
	DirResolveErrFmt = "resolve working directory %s: %w"
)
