package memcache_fx

import (
	"go.uber.org/fx"
	mem "sankofa/pkg/memcache"
)

var Module = fx.Provide(provideShareTokenCache)

func provideShareTokenCache() mem.ShareTokenCache {
	return mem.NewShareTokens()
}
