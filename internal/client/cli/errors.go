package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/dmitrijs2005/blogctl/internal/client/api"
)

// printRequestError reports a failed API call to the user. Validation
// errors are printed per field, anything else as a single line.
func printRequestError(w io.Writer, err error) {
	fields := api.FieldErrors(err)
	if len(fields) == 0 {
		fmt.Fprintln(w, "Error:", err.Error())
		return
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, msg := range fields[name] {
			fmt.Fprintf(w, "%s %s\n", name, msg)
		}
	}
}
