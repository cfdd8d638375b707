package navigation

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultWindowPollInterval = 10 * time.Millisecond
	DefaultMaxWindowWait      = 4 * time.Second
)

// Kind names the navigation kind a handler serves. It is used as a log field
// and a metrics label.
type Kind string

const (
	KindStack Kind = "stack"
	KindModal Kind = "modal"
	KindTab   Kind = "tab"
)

// Observer receives handler events. Implementations must be cheap; they run
// on the UI loop.
type Observer interface {
	ScreenCreated(kind Kind)
	Transition(kind Kind, op string, animated bool)
	ReverseSync(kind Kind)
	PresentationFailed(kind Kind, err error)
}

type nopObserver struct{}

func (nopObserver) ScreenCreated(Kind)             {}
func (nopObserver) Transition(Kind, string, bool)  {}
func (nopObserver) ReverseSync(Kind)               {}
func (nopObserver) PresentationFailed(Kind, error) {}

type Option func(*options)

type options struct {
	env            Env
	debug          bool
	logger         zerolog.Logger
	observer       Observer
	ignorePrevious bool
	pollInterval   time.Duration
	maxWait        time.Duration
}

func defaultOptions() options {
	return options{
		env:          Env{AnimationsEnabled: true},
		logger:       zerolog.Nop(),
		observer:     nopObserver{},
		pollInterval: DefaultWindowPollInterval,
		maxWait:      DefaultMaxWindowWait,
	}
}

func buildOptions(kind Kind, opts []Option) (options, zerolog.Logger) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With().
		Str("handler", string(kind)).
		Str("handler_id", uuid.NewString()).
		Logger()
	return o, log
}

// WithAnimations sets the global animation switch passed to every sync.
func WithAnimations(enabled bool) Option {
	return func(o *options) { o.env.AnimationsEnabled = enabled }
}

// WithDebug turns on usage checks, such as warning when the handler is no
// longer its container's delegate.
func WithDebug(enabled bool) Option {
	return func(o *options) { o.debug = enabled }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithIgnorePreviousScreens keeps screens that are already on a stack
// container at Setup as an unmanaged prefix below the managed screens.
func WithIgnorePreviousScreens() Option {
	return func(o *options) { o.ignorePrevious = true }
}

// WithWindowWait sets how often and how long a modal handler waits for its
// presenter to attach before giving up on a presentation.
func WithWindowWait(interval, maxWait time.Duration) Option {
	return func(o *options) {
		if interval > 0 {
			o.pollInterval = interval
		}
		if maxWait >= 0 {
			o.maxWait = maxWait
		}
	}
}
