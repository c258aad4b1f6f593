package weather

// Document is a loosely typed JSON object tree, as produced by encoding/json
// when decoding into map[string]any. Provider payloads are stored in this
// form so sub-views can be extracted by path without committing to the
// provider's schema.
type Document map[string]any

// Lookup walks nested object keys and returns the value at the end of the
// path. The boolean reports whether every step resolved; a missing key or a
// non-object intermediate value yields false.
func (d Document) Lookup(path ...string) (any, bool) {
	var cur any = map[string]any(d)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Section returns the nested object at path. It yields false when the path
// does not resolve or the value there is not an object.
func (d Document) Section(path ...string) (Document, bool) {
	v, ok := d.Lookup(path...)
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(obj), true
}
