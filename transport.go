package mizuno

import "github.com/brennie/mizuno/internal/config"

// Transport carries the raw protocol byte streams between the client and the
// command server. Implement this to test against a scripted server or to
// tunnel the protocol over something other than local pipes.
//
// The default implementation spawns `hg serve --cmdserver pipe` and owns its
// process handle exclusively. Custom transports can be injected via
// WithTransport.
type Transport = config.Transport
