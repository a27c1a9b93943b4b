package board

import "fmt"

// assertf panics with a formatted message when cond is false and the package
// was built with the boarddebug tag. Release builds ignore it.
func assertf(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
