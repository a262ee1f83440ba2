package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)
var CalendarCache = cache.New(cache.NoExpiration, 0)
