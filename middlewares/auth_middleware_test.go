package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledkino.pl/models"
	"ledkino.pl/repositories"
)

type fakeUserRepo struct {
	users map[uint]*models.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *models.User) error { return nil }

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(_ context.Context, _ *models.User) error { return nil }

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

// newAuthApp buduje aplikację z magazynem sesji w locals i trasą logowania,
// która wpisuje user_id do sesji tak jak handler logowania panelu.
func newAuthApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	store := session.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(LocalsSessionStore, store)
		return c.Next()
	})
	app.Post("/zaloguj/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return err
		}
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		sess.Set(SessionKeyUserID, uint(id))
		if err := sess.Save(); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/chronione", authWithRepo(repo), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": CurrentUser(c).Email})
	})
	return app
}

func login(t *testing.T, app *fiber.App, userID string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("POST", "/zaloguj/"+userID, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	cookie := resp.Header.Get("Set-Cookie")
	require.NotEmpty(t, cookie)
	return cookie
}

func getProtected(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", "/chronione", nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddlewareRejectsWithoutSession(t *testing.T) {
	app := newAuthApp(&fakeUserRepo{users: map[uint]*models.User{}})
	resp := getProtected(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareResolvesUserFromSession(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*models.User{
		7: {BaseModel: models.BaseModel{ID: 7}, Email: "kasia@ledkino.pl", Role: models.RoleEditor, IsActive: true},
	}}
	app := newAuthApp(repo)

	cookie := login(t, app, "7")
	resp := getProtected(t, app, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsDeletedUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*models.User{
		7: {BaseModel: models.BaseModel{ID: 7}, Email: "kasia@ledkino.pl", IsActive: true},
	}}
	app := newAuthApp(repo)

	cookie := login(t, app, "7")
	delete(repo.users, 7)

	// Konto zniknęło po zalogowaniu: sesja przestaje działać od razu.
	resp := getProtected(t, app, cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsInactiveUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[uint]*models.User{
		7: {BaseModel: models.BaseModel{ID: 7}, Email: "kasia@ledkino.pl", IsActive: true},
	}}
	app := newAuthApp(repo)

	cookie := login(t, app, "7")
	repo.users[7].IsActive = false

	resp := getProtected(t, app, cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
