package views

// Ellipsis marks truncated result content.
const Ellipsis = "…"

// Truncate returns s unchanged when it is at most limit runes long;
// otherwise the first limit runes followed by the ellipsis marker.
// Applying it twice yields the same result as once. A non-positive
// limit returns s unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + Ellipsis
}
