package frame

// DefaultMaxFrameLength caps one frame, matching the vanilla limit.
const DefaultMaxFrameLength = 1 << 21

// DefaultCompressThreshold is the body size at which a frame is
// compressed rather than sent raw inside the compressed format.
const DefaultCompressThreshold = 256

type Options struct {
	CompressType      CompressType
	CompressThreshold int
	MaxFrameLength    int
}

type Option func(*Options)

func WithCompressType(typ CompressType) Option {
	return func(o *Options) {
		o.CompressType = typ
	}
}

func WithCompressThreshold(threshold int) Option {
	return func(o *Options) {
		o.CompressThreshold = threshold
	}
}

func WithMaxFrameLength(max int) Option {
	return func(o *Options) {
		o.MaxFrameLength = max
	}
}

func newOptions(options ...Option) Options {
	o := Options{
		CompressType:      CompressNone,
		CompressThreshold: DefaultCompressThreshold,
		MaxFrameLength:    DefaultMaxFrameLength,
	}
	for _, opt := range options {
		opt(&o)
	}
	return o
}
