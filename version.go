package biznamesearch

// Version is overridden at build time with -ldflags
var Version = "v0.3.0-dev"
