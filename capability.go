package mizuno

// Capability is a feature flag advertised by the command server during the
// hello, gating which client behaviors are safe to rely on.
//
// Known capabilities compare equal to the Capability constants; anything else
// the server advertises is preserved verbatim and reports Known() == false.
type Capability string

// Capabilities this client understands.
const (
	// CapabilityRunCommand is required: without it command dispatch is
	// meaningless and connecting fails.
	CapabilityRunCommand Capability = "runcommand"

	// CapabilityGetEncoding indicates the server supports the getencoding
	// request.
	CapabilityGetEncoding Capability = "getencoding"
)

// knownCapabilities is the fixed capability table, built once and never
// mutated.
var knownCapabilities = map[string]Capability{
	"runcommand":  CapabilityRunCommand,
	"getencoding": CapabilityGetEncoding,
}

// ResolveCapability maps a capability name token to its known variant.
// Resolution is total: an unrecognized token resolves to an unknown
// capability preserving the original text.
func ResolveCapability(token string) Capability {
	if capability, ok := knownCapabilities[token]; ok {
		return capability
	}

	return Capability(token)
}

// Known reports whether this client understands the capability.
func (c Capability) Known() bool {
	_, ok := knownCapabilities[string(c)]

	return ok
}

// CapabilitySet is the set of capabilities negotiated during the hello. It
// is established once at connect time; callers must not modify it.
type CapabilitySet map[Capability]struct{}

// newCapabilitySet resolves each token and collects the results.
func newCapabilitySet(tokens []string) CapabilitySet {
	set := make(CapabilitySet, len(tokens))
	for _, token := range tokens {
		set[ResolveCapability(token)] = struct{}{}
	}

	return set
}

// Contains reports whether the set includes the given capability.
func (s CapabilitySet) Contains(capability Capability) bool {
	_, ok := s[capability]

	return ok
}
