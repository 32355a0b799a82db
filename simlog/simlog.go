// Package simlog configures the process-wide logrus formatter used by
// every package in this module. The teacher formats via its own
// private git.fiblab.net/utils/logrus-easy-formatter, unreachable
// outside the lab's network; this carries the same ambient logging
// concern with logrus's own TextFormatter instead.
package simlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init installs the module's standard log formatter and level. Call
// once, early, from a command's main.
func Init(level logrus.Level) {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})
}
