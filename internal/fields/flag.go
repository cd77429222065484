package fields

const FlagTrue = "true"

// ParseFlag converts a two-valued select ("true"/"false", "visible"/"hidden"
// style options stored as the literal strings) into a bool. Only the exact,
// lower-case "true" sentinel is true.
func ParseFlag(value string) bool {
	return value == FlagTrue
}

func FormatFlag(value bool) string {
	if value {
		return FlagTrue
	}
	return "false"
}
