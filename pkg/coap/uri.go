package coap

import "strings"

// SetURI parses uri as "[/]seg(/seg)*(?k=v(&k=v)*)?" — no scheme,
// authority, or port — and adds one URI_PATH option per path segment,
// followed by one URI_QUERY option per query element, in order.
//
// A one-character uri is emitted verbatim as a single URI_PATH option
// (this is how a bare "/" is represented: a single path segment "/").
// A zero-length uri is a no-op. Malformed input is accepted best-effort:
// URL syntax validation is explicitly not this function's job — the
// server layer decides semantic meaning.
//
// Fails with BufferFull if a borrowed buffer lacks room partway through;
// options already added before the failure remain in the PDU.
func (c *Codec) SetURI(uri string) error {
	if len(uri) == 0 {
		return nil
	}
	if len(uri) == 1 {
		return c.AddOption(OptionURIPath, []byte(uri))
	}

	path, query, hasQuery := strings.Cut(uri, "?")
	path = strings.TrimPrefix(path, "/")

	for _, seg := range strings.Split(path, "/") {
		if err := c.AddOption(OptionURIPath, []byte(seg)); err != nil {
			return err
		}
	}

	if !hasQuery {
		return nil
	}
	for _, kv := range strings.Split(query, "&") {
		if err := c.AddOption(OptionURIQuery, []byte(kv)); err != nil {
			return err
		}
	}
	return nil
}

// AddURIQuery appends a single URI_QUERY option, e.g. "k=v". It is
// additive sugar over AddOption for building up query parameters one at
// a time, alongside SetURI's all-at-once parser.
func (c *Codec) AddURIQuery(query string) error {
	return c.AddOption(OptionURIQuery, []byte(query))
}

// URI reconstructs the resource URI by concatenating every URI_PATH
// option as "/seg", then every URI_QUERY option prefixed by "?" (the
// first) or "&" (subsequent ones), in the order they appear in the
// option list.
func (c *Codec) URI() string {
	var b strings.Builder
	firstQuery := true
	for _, opt := range c.Options() {
		switch opt.Number {
		case OptionURIPath:
			b.WriteByte('/')
			b.Write(opt.Value)
		case OptionURIQuery:
			if firstQuery {
				b.WriteByte('?')
				firstQuery = false
			} else {
				b.WriteByte('&')
			}
			b.Write(opt.Value)
		}
	}
	return b.String()
}
