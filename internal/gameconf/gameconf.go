package gameconf

const (
	DefaultTitle       = "DragonFire"
	DefaultWindowScale = 1
	DefaultTickRate    = 60
)

type Options struct {
	// Title of the window
	Title string
	// WindowScale multiplies the logical 1280x720 grid to get the window size
	//
	// If not set, this will default to 1
	WindowScale float64
	// Debug draws collision bounds and frame timings
	Debug bool
	// TickRate is the number of ticks per second
	//
	// If not set, this will default to 60
	TickRate int
}

// WithDefaults returns a copy of the options with unset fields filled in
func (options Options) WithDefaults() Options {
	if options.Title == "" {
		options.Title = DefaultTitle
	}
	if options.WindowScale <= 0 {
		options.WindowScale = DefaultWindowScale
	}
	if options.TickRate <= 0 {
		options.TickRate = DefaultTickRate
	}
	return options
}
