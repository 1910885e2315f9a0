package samplesheet

// section markers
const (
	ReadsSection    = "[Reads]"
	SettingsSection = "[Settings]"
	HeaderSection   = "[Header]"
	DataSection     = "[Data]"
)

// ReadLengths is the [Reads] block: the section marker followed by the read lengths.
type ReadLengths []string

// Lengths returns the read lengths without the section marker.
func (r ReadLengths) Lengths() []string {
	if len(r) == 0 {
		return nil
	}
	return r[1:]
}

// Segment is one bracketed section of a library sheet.
type Segment interface {
	Name() string
	segment()
}

// HeaderSegment holds the key,value pairs of [Header].
type HeaderSegment struct {
	name   string
	Params map[string]string
	Keys   []string
}

func newHeaderSegment(name string) *HeaderSegment {
	return &HeaderSegment{
		name:   name,
		Params: make(map[string]string),
	}
}

func (h *HeaderSegment) Name() string { return h.name }
func (*HeaderSegment) segment()       {}

func (h *HeaderSegment) set(key, value string) {
	if _, ok := h.Params[key]; !ok {
		h.Keys = append(h.Keys, key)
	}
	h.Params[key] = value
}

// Get returns the value of a header parameter.
func (h *HeaderSegment) Get(key string) (string, bool) {
	value, ok := h.Params[key]
	return value, ok
}

// RowSegment holds the raw lines of any segment other than [Header].
type RowSegment struct {
	name  string
	Lines []string
}

func (r *RowSegment) Name() string { return r.name }
func (*RowSegment) segment()       {}

// LibrarySheet maps segment names to their content.
type LibrarySheet struct {
	Segments map[string]Segment
	Order    []string
}

// Setting is one adapter setting written to the [Settings] block.
type Setting struct {
	Key   string
	Value string
}
