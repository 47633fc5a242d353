package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ashtabanjan/restaurant-api/pkg/util"
)

func fieldErrors(t *testing.T, err error) map[string]any {
	t.Helper()
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	require.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	fields, ok := de.Details["fields"].(map[string]any)
	require.True(t, ok)
	return fields
}

func TestValidateRegisterRequest(t *testing.T) {
	assert.NoError(t, Validate(RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "hunter222"}))

	fields := fieldErrors(t, Validate(RegisterRequest{Email: "nope", Password: "short"}))
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Equal(t, "email must be a valid email", fields["email"])
}

func TestValidateChangePasswordRequiresNewValue(t *testing.T) {
	fields := fieldErrors(t, Validate(ChangePasswordRequest{CurrentPassword: "hunter222", NewPassword: "hunter222"}))
	assert.Contains(t, fields, "new_password")
}

func TestValidatePaymentRequest(t *testing.T) {
	ok := PaymentRequest{
		TransactionID: "pi_1",
		Amount:        10,
		CartItemIDs:   []string{"65f1a0c2e4b0a1b2c3d4e5f6"},
		MenuItemIDs:   []string{"65f1a0c2e4b0a1b2c3d4e5f7"},
	}
	assert.NoError(t, Validate(ok))

	bad := ok
	bad.Amount = 0
	bad.MenuItemIDs = []string{"not-an-id"}
	fields := fieldErrors(t, Validate(bad))
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "menu_item_ids[0]")
}

func TestValidateRoleRequest(t *testing.T) {
	assert.NoError(t, Validate(RoleRequest{Role: "admin"}))
	fields := fieldErrors(t, Validate(RoleRequest{Role: "chef"}))
	assert.Equal(t, "role must be one of: user admin", fields["role"])
}

func TestValidateMenuPatch(t *testing.T) {
	empty := ""
	negative := -1.0
	fields := fieldErrors(t, Validate(MenuItemPatchRequest{Name: &empty, Price: &negative}))
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
}
