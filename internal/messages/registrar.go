package messages

// Registrar and control-plane client messages.
const (
	// RegistrarFieldRequiredFmt flags empty InstallerInfo fields before install.
	RegistrarFieldRequiredFmt = "installer info field %s is required"
	RegistrarPortRequired     = "installer info field appRunPort must be greater than zero"
	// RegistrarPortBoundFmt formats port conflicts detected before registration.
	RegistrarPortBoundFmt   = "cannot install %s %s: %w"
	RegistrarFetchAppFmt    = "fetch application artifact: %w"
	RegistrarFetchJDKFmt    = "fetch jdk artifact: %w"
	RegistrarExtractAppFmt  = "extract application artifact: %w"
	RegistrarExtractJDKFmt  = "extract jdk artifact: %w"
	RegistrarPersistFmt     = "persist installer store: %w"
	RegistrarStoreRequired  = "registrar store is required"
	RegistrarClientRequired = "registrar fetcher is required"

	// ControlPlaneRequestErrFmt formats request construction errors.
	ControlPlaneRequestErrFmt = "build %s request: %w"
	ControlPlaneTransportFmt  = "call control plane %s: %w"
	ControlPlaneStatusFmt     = "control plane %s: unexpected status %d"
	ControlPlaneDecodeFmt     = "decode control plane response: %w"
	ControlPlaneURLRequired   = "control plane url is required"
)
