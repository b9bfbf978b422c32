package types

// Version is the application version, overwritten at build time via ldflags
var Version = "dev"

// AppName is the service name used in health responses and user agents
const AppName = "drover"
