package entitlements

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/resumeiq/resumeiq/app/models"
	"github.com/resumeiq/resumeiq/internal/pkg/subscription"
)

type stubRepository struct {
	subs map[string]*models.Subscription
}

func (s *stubRepository) Activate(p *models.Payment, sub *models.Subscription) error {
	s.subs[sub.UserEmail] = sub
	return nil
}

func (s *stubRepository) GetByUserEmail(email string) (*models.Subscription, error) {
	sub, ok := s.subs[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sub, nil
}

func (s *stubRepository) DeleteByUserEmail(email string) error {
	delete(s.subs, email)
	return nil
}

func (s *stubRepository) ConsumeCredit(email string) error { return nil }

func newGuardedApp(repo *stubRepository) *fiber.App {
	svc := subscription.NewService(repo)
	app := fiber.New()
	app.Post("/protected", RequireActiveSubscription(svc), func(c *fiber.Ctx) error {
		sub := GetSubscription(c)
		return c.JSON(fiber.Map{"success": true, "plan": sub.PlanID})
	})
	return app
}

func doPost(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/protected", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestGateMissingEmail(t *testing.T) {
	app := newGuardedApp(&stubRepository{subs: map[string]*models.Subscription{}})

	status, body := doPost(t, app, `{}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "EMAIL_REQUIRED", body["error"])
}

func TestGateNoSubscription(t *testing.T) {
	app := newGuardedApp(&stubRepository{subs: map[string]*models.Subscription{}})

	status, body := doPost(t, app, `{"email":"a@x.com"}`)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NO_SUBSCRIPTION", body["reason"])
}

func TestGateExpired(t *testing.T) {
	repo := &stubRepository{subs: map[string]*models.Subscription{
		"a@x.com": {UserEmail: "a@x.com", PlanID: "monthly", ExpiresAt: time.Now().Add(-time.Minute).UnixMilli()},
	}}
	app := newGuardedApp(repo)

	status, body := doPost(t, app, `{"email":"a@x.com"}`)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "EXPIRED", body["reason"])

	// gate evicted the expired row; next denial reports no subscription
	status, body = doPost(t, app, `{"email":"a@x.com"}`)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "NO_SUBSCRIPTION", body["reason"])
}

func TestGateActivePassesAndAttachesGrant(t *testing.T) {
	repo := &stubRepository{subs: map[string]*models.Subscription{
		"a@x.com": {UserEmail: "a@x.com", PlanID: "monthly", ExpiresAt: time.Now().Add(time.Hour).UnixMilli()},
	}}
	app := newGuardedApp(repo)

	status, body := doPost(t, app, `{"email":"a@x.com"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "monthly", body["plan"])
}

func TestGateNoCredits(t *testing.T) {
	zero := 0
	repo := &stubRepository{subs: map[string]*models.Subscription{
		"a@x.com": {
			UserEmail: "a@x.com",
			PlanID:    "monthly",
			ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
			AICredits: &zero,
		},
	}}
	app := newGuardedApp(repo)

	status, body := doPost(t, app, `{"email":"a@x.com"}`)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "NO_CREDITS", body["reason"])
}

func TestGateEmailFromQuery(t *testing.T) {
	repo := &stubRepository{subs: map[string]*models.Subscription{
		"a@x.com": {UserEmail: "a@x.com", PlanID: "monthly", ExpiresAt: time.Now().Add(time.Hour).UnixMilli()},
	}}
	svc := subscription.NewService(repo)
	app := fiber.New()
	app.Post("/protected", RequireActiveSubscription(svc), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	req := httptest.NewRequest("POST", "/protected?email=A@X.com", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
