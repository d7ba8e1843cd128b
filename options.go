package typeflow

import (
	"github.com/charmbracelet/log"
	"github.com/tsawler/typeflow/flow"
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
)

// ComposeOptions holds configuration for one composition run.
type ComposeOptions struct {
	// Page geometry
	page    model.Size
	backlog []model.Size
	repeat  bool

	// Output expansion per axis
	expand model.Axes

	// Ambient styles for the whole composition
	styles style.Properties

	// Engine trace logger (nil disables tracing)
	logger *log.Logger

	// Layout delegate; nil selects the standard delegate
	delegate flow.Delegate
}

// defaultOptions returns the default composition options: one US Letter
// page repeated indefinitely, no expansion, default styles.
func defaultOptions() ComposeOptions {
	return ComposeOptions{
		page:   model.Size{W: 612, H: 792},
		repeat: true,
	}
}
