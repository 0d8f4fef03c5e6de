package akn

// Convert parses normalized plain text into a legislative document tree and
// renders it as Akoma Ntoso XML. The transform is pure and synchronous:
// independent conversions may run in parallel with no coordination.
//
// Parsing is total, so degenerate input (empty text, text with no
// recognizable headers) yields a minimal valid document rather than an
// error. The only failure mode is a malformed date in the config.
func Convert(text string, config Config) (string, error) {
	return Serialize(ParseText(text), config)
}
