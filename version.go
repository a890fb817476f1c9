package dicetale

// Version is the current release of Dicetale.
var Version = "0.3.0"
