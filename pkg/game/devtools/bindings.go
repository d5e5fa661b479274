package devtools

import (
	"fmt"
	"io"
	"strings"

	"starmap/pkg/engine/input"
)

// WriteBindings prints one line per bound action with its keys
func WriteBindings(w io.Writer) {
	byAction := input.GetBindingsByAction()
	for a := input.ActionScrollUp; a <= input.ActionCopyCoordinate; a++ {
		codes := byAction[a]
		if len(codes) == 0 {
			codes = []string{"(unbound)"}
		}
		fmt.Fprintf(w, "%-16s %s\n", input.ActionName(a), strings.Join(codes, ", "))
	}
}
