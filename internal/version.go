package internal

// Version is the translate release version
const Version = "0.1.0"
