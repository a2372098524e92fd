package statusbar_test

import (
	"fmt"

	"github.com/darrenchooji/fiona/internal/types"
	"github.com/darrenchooji/fiona/internal/ui/statusbar"
	"github.com/darrenchooji/fiona/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	style := styles.New()

	sb := statusbar.New(types.ModeInput, 80, style).WithTasks(2, "file")

	// Render it (output will include ANSI codes for styling)
	rendered := sb.Render()

	fmt.Println(len(rendered) > 0)
	// Output: true
}

// ExampleGetHints shows how to get hints for different modes
func ExampleGetHints() {
	fmt.Println(statusbar.GetHints(types.ModeScroll))
	// Output: j/k: scroll  g/G: top/bottom  i: type  ?: help  q: quit
}
