package version

// Version is the tool suite version reported by -v/--version.
const Version = "0.2.0"
