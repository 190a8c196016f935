package common

// File permission constants shared by config and output sinks
const (
	// FilePermissionSecure is used for config files that may hold warehouse credentials
	FilePermissionSecure = 0600

	// FilePermissionNormal is used for generated workbooks and csv exports
	FilePermissionNormal = 0644

	// DirPermissionSecure is used for the per-user config directory
	DirPermissionSecure = 0700

	// DirPermissionNormal is used for output directories
	DirPermissionNormal = 0755
)
