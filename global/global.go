package global

import (
	"github.com/rs/zerolog"
)

// Logger is replaced with a console writer during initialize; the default
// discards output so library-level tests stay quiet.
var Logger = zerolog.Nop()
