package cli

import (
	"github.com/suhani1709/studyflow/internal/storage"
	"github.com/suhani1709/studyflow/internal/tracker"
)

// Context is passed to every command by kong.
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Debug   bool
}
