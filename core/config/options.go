package config

type options struct {
	environment map[string]string
	envFiles    []string
}

// Option configures Parse.
type Option func(*options)

// WithEnvironment parses from the given variables instead of the process
// environment.
func WithEnvironment(environment map[string]string) Option {
	return func(o *options) {
		o.environment = environment
	}
}

// WithEnvFiles reads additional variables from dotenv files. Variables already
// present in the environment win over file values.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
