// Package typeflow provides a fluent API for laying prepared document
// content out into paginated frames.
//
// Basic usage:
//
//	fragment, err := typeflow.Compose(
//	    content.Paragraph("It was a dark and stormy night."),
//	    content.Spacing(12),
//	    content.Paragraph("Suddenly, a shot rang out."),
//	).PageSize(612, 792).Fragment()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(fragment)
//
// Compose collects content children; option methods configure the page
// geometry and styles; Fragment runs the flow engine and returns one
// frame per produced page.
//
// For advanced use cases, the lower-level flow package is also
// available.
package typeflow

import (
	"github.com/charmbracelet/log"
	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/flow"
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
)

// Composer accumulates content and configuration for one layout run.
// It is created by Compose and consumed by Fragment.
type Composer struct {
	children []*content.Element
	options  ComposeOptions
}

// Compose starts a fluent composition over the given content children
func Compose(children ...*content.Element) *Composer {
	return &Composer{
		children: children,
		options:  defaultOptions(),
	}
}

// Add appends further content children
func (c *Composer) Add(children ...*content.Element) *Composer {
	c.children = append(c.children, children...)
	return c
}

// PageSize sets the repeated page size in points
func (c *Composer) PageSize(w, h float64) *Composer {
	c.options.page = model.Size{W: w, H: h}
	return c
}

// Pages sets an explicit sequence of page sizes. The final size repeats
// unless Bounded is called.
func (c *Composer) Pages(sizes ...model.Size) *Composer {
	if len(sizes) > 0 {
		c.options.page = sizes[0]
		c.options.backlog = sizes[1:]
	}
	return c
}

// Bounded stops the final page size from repeating: content beyond the
// configured pages stays in the last one.
func (c *Composer) Bounded() *Composer {
	c.options.repeat = false
	return c
}

// Expand controls whether output frames fill the page size or shrink
// to their content, per axis.
func (c *Composer) Expand(x, y bool) *Composer {
	c.options.expand = model.Axes{X: x, Y: y}
	return c
}

// Styles layers ambient style properties for the whole composition
func (c *Composer) Styles(props style.Properties) *Composer {
	c.options.styles = props
	return c
}

// WithLogger enables the engine's debug trace
func (c *Composer) WithLogger(logger *log.Logger) *Composer {
	c.options.logger = logger
	return c
}

// WithDelegate replaces the standard layout delegate
func (c *Composer) WithDelegate(del flow.Delegate) *Composer {
	c.options.delegate = del
	return c
}

// Fragment runs the flow engine and returns the finished frames, one
// per produced page. This is the terminal operation.
func (c *Composer) Fragment() (model.Fragment, error) {
	opts := c.options
	del := opts.delegate
	if del == nil {
		del = NewStandardDelegate()
	}
	regions := flow.NewRegions(opts.page, opts.backlog, opts.repeat, opts.expand)
	regions.Root = true
	cfg := flow.Config{Logger: opts.logger}
	loc := content.NewLocator()
	styles := style.NewChain(opts.styles)
	return flow.LayoutWithConfig(cfg, del, loc, c.children, styles, regions)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	fragment := typeflow.Must(typeflow.Compose(children...).Fragment())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
