package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"studyplan/internal/exitcode"
	"studyplan/internal/service"
)

// optionalString is a string flag that remembers whether it was given,
// so an explicit empty value can be told apart from an absent flag.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

// registerOptional binds long and short names to the same optionalString.
func registerOptional(fs *flag.FlagSet, o *optionalString, names ...string) {
	for _, name := range names {
		fs.Var(o, name, "")
	}
}

// reset clears flag state left over from a previous run of the same command value.
func (o *optionalString) reset() {
	*o = optionalString{}
}

// parseDueFlag parses a --due value.
func parseDueFlag(s string) (service.Date, error) {
	return service.ParseDate(strings.TrimSpace(s))
}

// reportStorageError prints a storage failure and returns the exit code.
func reportStorageError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: storage error: %v\n", err)
	return exitcode.StorageError
}

// reportUserError prints a user error and returns the exit code.
func reportUserError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}
