// Package api is the thin request-shaping layer over the brewdesk backend.
// It holds no decision logic: every call returns the backend's result or an
// error, and only the success paths of Login/VerifyOTP feed the state models.
package api

import "context"

// RegisterRequest starts the registration flow for an email address.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest starts the password-reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest confirms the one-time code sent to Email. Flow
// disambiguates which backend flow issued the code.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
	Flow  string `json:"flow,omitempty"`
}

// VerifyOTPResult carries the short-lived token authorizing the final
// password-set call.
type VerifyOTPResult struct {
	TempToken string `json:"temp_token"`
}

// SetPasswordRequest completes onboarding. TempToken authorizes the call in
// place of a full login.
type SetPasswordRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	TempToken string `json:"temp_token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the backend's user record, shared by the auth and admin calls.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type UpdateUserRequest struct {
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

// MenuItem is one product on the menu with its current stock level.
type MenuItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type CreateMenuItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// StockAdjustment moves stock in (positive Delta) or out (negative Delta).
type StockAdjustment struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason,omitempty"`
}

type Order struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Client is the surface the screens call. Implementations must honor
// context cancellation and map transport failures to the package sentinels.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) error
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VerifyOTPResult, error)
	SetPassword(ctx context.Context, req SetPasswordRequest) error
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context) error

	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error)

	ListMenu(ctx context.Context) ([]MenuItem, error)
	CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (*MenuItem, error)
	AdjustStock(ctx context.Context, id string, req StockAdjustment) (*MenuItem, error)

	ListOrders(ctx context.Context, tenantID, userID string) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, tenantID, userID, orderID string, req UpdateOrderStatusRequest) error
}
