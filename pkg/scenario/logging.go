package scenario

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("scenario", "multicast scenario runner")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
