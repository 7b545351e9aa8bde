package httpapi

import "github.com/charmbracelet/log"

// logAccess funnels gorilla/handlers' access-log lines and driver warnings
// through charmbracelet/log, matching the structured logging SPEC_FULL.md's
// AMBIENT STACK specifies for the driver layers.
func logAccess(line string) {
	log.Info(line)
}
