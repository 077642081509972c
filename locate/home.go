package locate

import (
	"os/user"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// HomeCache remembers the home directories of users looked up in the
// user database. One cache can be shared by any number of Locators and
// is safe for concurrent use.
type HomeCache struct {
	arc *lru.ARCCache
}

// NewHomeCache creates an ARC-based cache holding up to size users.
func NewHomeCache(size int) (*HomeCache, error) {
	arc, err := lru.NewARC(size)
	if err != nil {
		return nil, errors.Wrap(err, "create home cache")
	}
	return &HomeCache{arc: arc}, nil
}

// Len returns the number of cached users.
func (c *HomeCache) Len() int {
	return c.arc.Len()
}

// Purge forgets every cached user.
func (c *HomeCache) Purge() {
	c.arc.Purge()
}

func (c *HomeCache) get(uid string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.arc.Get(uid)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (c *HomeCache) add(uid, home string) {
	if c != nil {
		c.arc.Add(uid, home)
	}
}

func lookupHome(uid string) (string, error) {
	u, err := user.LookupId(uid)
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}
