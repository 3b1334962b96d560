package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func ctxWithClaims(t *testing.T, claims jwt.MapClaims) (*fiber.App, *fiber.Ctx) {
	t.Helper()
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	c.Locals("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))
	return app, c
}

func TestCurrentUser(t *testing.T) {
	id := uuid.New()
	app, c := ctxWithClaims(t, jwt.MapClaims{
		"user_id":   id.String(),
		"user_type": "veteran",
	})
	defer app.ReleaseCtx(c)

	userID, userType := currentUser(c)
	assert.Equal(t, id, userID)
	assert.Equal(t, "veteran", userType)
}

func TestCurrentUser_MalformedClaims(t *testing.T) {
	// A validly signed token is not guaranteed to carry string claims.
	cases := map[string]jwt.MapClaims{
		"missing claims":      {},
		"non-string user id":  {"user_id": 42, "user_type": "newbie"},
		"non-string type":     {"user_id": uuid.New().String(), "user_type": 7},
		"unparseable user id": {"user_id": "not-a-uuid", "user_type": "newbie"},
	}
	for name, claims := range cases {
		app, c := ctxWithClaims(t, claims)

		assert.NotPanics(t, func() {
			userID, userType := currentUser(c)
			if name != "non-string type" {
				assert.Equal(t, uuid.Nil, userID, name)
			}
			if name != "unparseable user id" && name != "non-string user id" {
				assert.Empty(t, userType, name)
			}
		}, name)

		app.ReleaseCtx(c)
	}
}
