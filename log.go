package tiktok

import (
	"log"
	"os"
)

// Debug logging is off unless TIKTOK_DEBUG is set in the environment.
var debugEnabled = os.Getenv("TIKTOK_DEBUG") != ""

func debugLog(format string, args ...any) {
	if debugEnabled {
		log.Printf("tiktok: "+format, args...)
	}
}
