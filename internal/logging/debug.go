package logging

import (
	"os"
)

// DebugEnv names the environment variable that forces debug logging.
const DebugEnv = "TODO_DEBUG"

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}
