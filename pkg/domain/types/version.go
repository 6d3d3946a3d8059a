package types

// Version is the build version of beacon, overridden with -ldflags at release time
var Version = "dev"

// ServiceName is reported by the health endpoint and used as the CLI name
const ServiceName = "beacon"
