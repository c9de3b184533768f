package memcache_fx

import (
	"go.uber.org/fx"

	mem "cougcuts/pkg/memcache"
)

var Module = fx.Provide(provideLinkTokenStore)

func provideLinkTokenStore() mem.LinkTokenStore {
	return mem.NewLinkTokens()
}
