package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the request id on both requests and responses.
const Header = "X-Ray-Id"

// LocalsKey is where the ray id is stored on the Fiber context.
const LocalsKey = "ray_id"

// New returns middleware that ensures every request has a ray id. An id
// supplied by the caller is kept so multi-request client flows can share one
// trace; otherwise a fresh uuid is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
