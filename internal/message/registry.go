package message

// Registry maps wire root tags to message kinds and back.
type Registry struct {
	byTag  map[string]Kind
	byKind map[Kind]string
}

var defaultRootTags = map[Kind]string{
	KindFindPerson:           "PRPA_IN201305UV02",
	KindFindPersonResponse:   "PRPA_IN201306UV02",
	KindCreatePerson:         "PRPA_IN201311UV02",
	KindCreatePersonAccepted: "PRPA_IN201312UV02",
	KindModifyPerson:         "PRPA_IN201314UV02",
	KindModifyPersonAccepted: "PRPA_IN201315UV02",
	KindNotifyPersonChanged:  "PRPA_IN201302UV02",
	KindLogEntry:             "LogEntry",
	KindGetWork:              "GetWork",
	KindWorkDone:             "WorkDone",
	KindReassignWork:         "ReassignWork",
}

// NewRegistry returns a registry preloaded with the standard root tags.
func NewRegistry() *Registry {
	r := &Registry{
		byTag:  make(map[string]Kind, len(defaultRootTags)),
		byKind: make(map[Kind]string, len(defaultRootTags)),
	}
	for k, tag := range defaultRootTags {
		r.Register(k, tag)
	}
	return r
}

// Register binds kind to rootTag, replacing any earlier binding of either.
// Not safe for use concurrently with lookups.
func (r *Registry) Register(kind Kind, rootTag string) {
	if old, ok := r.byKind[kind]; ok {
		delete(r.byTag, old)
	}
	if prev, ok := r.byTag[rootTag]; ok {
		delete(r.byKind, prev)
	}
	r.byTag[rootTag] = kind
	r.byKind[kind] = rootTag
}

// Resolve returns the kind whose root tag is rootTag.
func (r *Registry) Resolve(rootTag string) (Kind, bool) {
	k, ok := r.byTag[rootTag]
	return k, ok
}

// RootTag returns the root tag of kind.
func (r *Registry) RootTag(kind Kind) (string, bool) {
	tag, ok := r.byKind[kind]
	return tag, ok
}
