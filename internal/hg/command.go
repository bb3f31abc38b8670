package hg

import (
	"fmt"
	"os"

	"github.com/brennie/mizuno/internal/config"
)

// ServerArgs returns the fixed arguments that put hg into pipe command-server
// mode.
func ServerArgs() []string {
	return []string{"serve", "--cmdserver", "pipe"}
}

// BuildEnvironment constructs the environment for the server process.
//
// User-provided variables are applied first; the plain-mode and encoding
// overrides come last so they cannot be shadowed. HGPLAIN disables aliases,
// custom output templating, and pager behavior that would otherwise corrupt
// the protocol stream.
func BuildEnvironment(options *config.Options) []string {
	env := os.Environ()

	for key, value := range options.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	env = append(env,
		"HGPLAIN=True",
		"HGENCODING=UTF-8",
		"HGENCODINGMODE=strict",
	)

	return env
}
