// Package cache provides a size-bounded least-recently-used cache.
//
//	c := cache.NewLRU[rune, *image.Alpha](256)
//	c.Put('A', mask)
//	mask, ok := c.Get('A')
//
// LRU is not safe for concurrent use; owners guard it with their own lock.
package cache
