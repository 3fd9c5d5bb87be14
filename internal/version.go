package internal

// Version is the annatar release version.
const Version = "0.3.0"
