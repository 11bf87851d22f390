package tui

import (
	"fmt"
	"strings"
)

// IssuesURL is where operators are asked to report unexpected failures.
const IssuesURL = "https://github.com/MKhiriev/go-tg-userbot/issues"

// ProgramStart prints the opening banner.
func (c *Console) ProgramStart() {
	_, _ = fmt.Fprintf(c.out, "\n%s\n\n", strings.Repeat("💨", 40))
}

// ProgramEnd prints the closing banner.
func (c *Console) ProgramEnd() {
	_, _ = fmt.Fprintf(c.out, "\n%s\n\n", strings.Repeat("🍁", 40))
}

// Farewell is printed when the operator interrupts the program.
func (c *Console) Farewell() {
	_, _ = fmt.Fprintln(c.out, "\n\nExiting safely; see you soon.")
	c.ProgramEnd()
}

// UnexpectedError prints trace (already sanitized) followed by the support
// message.
func (c *Console) UnexpectedError(trace string) {
	_, _ = fmt.Fprintln(c.out, "\n🚨🚨 A fatal error has occurred. 🚨🚨")
	_, _ = fmt.Fprintln(c.out)
	_, _ = fmt.Fprintln(c.out, trace)
	_, _ = fmt.Fprintf(c.out, "\n❗%s\n", strings.Repeat("💬", 5))
	_, _ = fmt.Fprintln(c.out, "Apologies for the error; it seems there is a bug that is not handled yet.")
	_, _ = fmt.Fprintln(c.out, "Kindly report it at:")
	_, _ = fmt.Fprintf(c.out, "    - GitHub >> %s\n", IssuesURL)
	_, _ = fmt.Fprintln(c.out, "Do attach a complete copy of the trace above.")
	_, _ = fmt.Fprintln(c.out, "Directories were sanitised, but in case something leaks, please redact it.")
	_, _ = fmt.Fprintf(c.out, "%s ❗\n\n", strings.Repeat("💬", 5))
}
