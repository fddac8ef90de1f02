package translation

import "fmt"

// defaultSystemMessage builds the instruction used by the chat based
// providers when no system message is configured
func defaultSystemMessage(source, target string) string {
	switch {
	case source != "" && target != "":
		return fmt.Sprintf("Translate from %s to %s.", source, target)
	case source != "":
		return fmt.Sprintf("Translate from %s", source)
	case target != "":
		return fmt.Sprintf("Translate into %s", target)
	default:
		return "Translate."
	}
}
